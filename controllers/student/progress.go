package studentController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadProgress fetches the user's progress record for a course with its
// lectures in curriculum order. If the record is missing but the user is
// entitled (a capture that did not fully apply), it is re-derived on the
// spot before giving up.
func loadProgress(db *gorm.DB, userID uint, courseID string) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := db.Preload("Lectures", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if ensureErr := utils.EnsureProgressRecord(db, userID, courseID); ensureErr != nil {
		log.Printf("Error re-deriving progress for user %d course %s: %v", userID, courseID, ensureErr)
		return nil, err
	}

	err = db.Preload("Lectures", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// resumeLectureID returns the lecture to resume from: the first unviewed
// lecture scanning the curriculum from the start. A gap in the middle keeps
// the pointer at the gap even when later lectures are viewed.
func resumeLectureID(record *models.ProgressRecord) string {
	for _, lecture := range record.Lectures {
		if !lecture.Viewed {
			return lecture.LectureID
		}
	}
	return ""
}

// GetCourseProgress returns the user's progress record for a course along
// with the resume pointer
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	if queryUser, hasQuery := c.Locals("queryUserId").(uint); hasQuery && queryUser != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own progress!", nil)
	}

	db := database.Database.Db

	if !utils.HasEntitlement(db, userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is locked. Please purchase it first!", nil)
	}

	record, err := loadProgress(db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":        record,
		"resumeLectureId": resumeLectureID(record),
	})
}

// MarkLectureViewed marks one lecture of an entitled course as viewed and
// flips the record to completed once every lecture has been seen
func MarkLectureViewed(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	lectureID := c.Locals("lectureID").(string)

	db := database.Database.Db

	if !utils.HasEntitlement(db, userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is locked. Please purchase it first!", nil)
	}

	record, err := loadProgress(db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	var target *models.LectureProgress
	for i := range record.Lectures {
		if record.Lectures[i].LectureID == lectureID {
			target = &record.Lectures[i]
			break
		}
	}
	if target == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found in this course!", nil)
	}

	if !target.Viewed {
		now := time.Now()
		target.Viewed = true
		target.DateViewed = &now
		if err := db.Save(target).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	allViewed := true
	for _, lecture := range record.Lectures {
		if !lecture.Viewed {
			allViewed = false
			break
		}
	}
	if allViewed && !record.Completed {
		record.Completed = true
		if err := db.Model(record).Update("completed", true).Error; err != nil {
			log.Printf("Error marking course %s completed for user %d: %v", courseID, userID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked as viewed!", fiber.Map{
		"progress":        record,
		"resumeLectureId": resumeLectureID(record),
	})
}

// ResetCourseProgress clears all viewed flags and the completed state so the
// user can rewatch the course from the start
func ResetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	db := database.Database.Db

	if !utils.HasEntitlement(db, userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is locked. Please purchase it first!", nil)
	}

	record, err := loadProgress(db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	if err := db.Model(&models.LectureProgress{}).
		Where("progress_record_id = ?", record.ID).
		Updates(map[string]interface{}{"viewed": false, "date_viewed": nil}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	if err := db.Model(record).Update("completed", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	record, err = loadProgress(db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset successfully!", fiber.Map{
		"progress":        record,
		"resumeLectureId": resumeLectureID(record),
	})
}
