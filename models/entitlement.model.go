package models

import (
	"time"

	"gorm.io/gorm"
)

// Item types a user can purchase. Catalog items carry globally unique
// public IDs, so an item ID never collides across the two catalogs.
const (
	ItemTypeCourse     = "Course"
	ItemTypeTestSeries = "TestSeries"
)

// Entitlement is the durable proof that a user may access a catalog item.
// The composite unique index guarantees at most one grant per user and item,
// even under concurrent capture calls.
type Entitlement struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_entitlement_user_item;not null"`
	ItemID       string    `json:"item_id" gorm:"uniqueIndex:idx_entitlement_user_item;not null"`
	ItemType     string    `json:"item_type" gorm:"not null"` // Course, TestSeries
	PurchaseDate time.Time `json:"purchase_date"`
}
