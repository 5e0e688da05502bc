package models

import (
	"time"

	"gorm.io/gorm"
)

// EnrollmentProjection is a denormalized "my learning" row kept warm by the
// fulfillment workflow. It mirrors the order line snapshot so the listing
// endpoints never join the catalog tables. Derived data: the reconciler can
// rebuild it from entitlements and the catalog at any time.
type EnrollmentProjection struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"uniqueIndex:idx_projection_user_item;not null"`
	ItemID         string    `json:"item_id" gorm:"uniqueIndex:idx_projection_user_item;not null"`
	ItemType       string    `json:"item_type" gorm:"index;not null"` // Course, TestSeries
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	InstructorID   uint      `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	PurchaseDate   time.Time `json:"purchase_date"`
}
