package utils

import (
	"lingo/models"
	"lingo/models/catalog"
	orderModels "lingo/models/order"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinalizeOrderFulfillment applies the post-payment fan-out for a confirmed
// order: entitlement grant, enrollment-projection upsert and, for courses,
// progress initialization. Every step is idempotent, so the whole pass can
// be re-run for the same order until it converges. A failed step is logged
// and does not abort the remaining steps. Returns true when every step
// applied cleanly.
func FinalizeOrderFulfillment(db *gorm.DB, ord *orderModels.Order) bool {
	allApplied := true

	for _, line := range ord.Lines {
		if err := GrantEntitlement(db, ord.UserID, line); err != nil {
			log.Printf("[FULFILLMENT] Order %d: entitlement grant failed for item %s: %v", ord.ID, line.ItemID, err)
			allApplied = false
		}

		if err := UpsertEnrollmentProjection(db, ord.UserID, line); err != nil {
			log.Printf("[FULFILLMENT] Order %d: projection upsert failed for item %s: %v", ord.ID, line.ItemID, err)
			allApplied = false
		}

		if line.ItemType == models.ItemTypeCourse {
			if err := EnsureProgressRecord(db, ord.UserID, line.ItemID); err != nil {
				log.Printf("[FULFILLMENT] Order %d: progress init failed for course %s: %v", ord.ID, line.ItemID, err)
				allApplied = false
			}
		}
	}

	return allApplied
}

// GrantEntitlement appends the (user, item) tuple unless it already exists.
// The ON CONFLICT clause rides on the composite unique index, so concurrent
// captures for the same user and item can never produce a duplicate grant.
func GrantEntitlement(db *gorm.DB, userID uint, line orderModels.OrderLine) error {
	entitlement := models.Entitlement{
		UserID:       userID,
		ItemID:       line.ItemID,
		ItemType:     line.ItemType,
		PurchaseDate: time.Now(),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(&entitlement).Error
}

// UpsertEnrollmentProjection inserts the "my learning" row for the order
// line if it is not there yet; an existing row is left untouched
func UpsertEnrollmentProjection(db *gorm.DB, userID uint, line orderModels.OrderLine) error {
	projection := models.EnrollmentProjection{
		UserID:         userID,
		ItemID:         line.ItemID,
		ItemType:       line.ItemType,
		Title:          line.Title,
		Image:          line.Image,
		InstructorID:   line.InstructorID,
		InstructorName: line.InstructorName,
		PurchaseDate:   time.Now(),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(&projection).Error
}

// EnsureProgressRecord creates the progress record for a course entitlement
// if none exists, snapshotting the course's current curriculum with every
// lecture unviewed. An existing record is never touched, so lectures added
// to the course later do not appear in it.
func EnsureProgressRecord(db *gorm.DB, userID uint, courseID string) error {
	var existing models.ProgressRecord
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return nil
	}

	var course catalog.Course
	if err := db.Preload("Curriculum", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_deleted = false").Order("order_index asc")
	}).Where("public_id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return err
	}

	record := models.ProgressRecord{
		UserID:   userID,
		CourseID: courseID,
	}
	for _, lecture := range course.Curriculum {
		record.Lectures = append(record.Lectures, models.LectureProgress{
			LectureID:  lecture.PublicID,
			Title:      lecture.Title,
			OrderIndex: lecture.OrderIndex,
		})
	}

	if err := db.Create(&record).Error; err != nil {
		// A concurrent capture may have inserted the record between the
		// lookup and the create; the unique index rejects the loser.
		var again models.ProgressRecord
		if db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&again).Error == nil {
			return nil
		}
		return err
	}

	return nil
}

// HasEntitlement reports whether the user holds an entitlement for the item
func HasEntitlement(db *gorm.DB, userID uint, itemID string) bool {
	var entitlement models.Entitlement
	return db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&entitlement).Error == nil
}
