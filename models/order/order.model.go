package order

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	// FulfillmentStatus makes divergence between the confirmed order and its
	// subordinate writes (entitlement, projection, progress) observable. The
	// reconciler drives partial orders back to complete.
	FulfillmentPending  = "pending"
	FulfillmentPartial  = "partial"
	FulfillmentComplete = "complete"
)

// Order records a purchase intent and its lifecycle. Purchaser identity and
// the order lines are denormalized at creation time and never change
// afterwards; only the status and payment fields are mutated, exactly once,
// by the capture step.
type Order struct {
	gorm.Model
	UserID            uint        `json:"user_id" gorm:"index;not null"`
	UserName          string      `json:"user_name"`
	UserEmail         string      `json:"user_email"`
	OrderStatus       string      `json:"order_status" gorm:"default:'pending'"`
	PaymentMethod     string      `json:"payment_method" gorm:"default:'mock-gateway'"`
	PaymentStatus     string      `json:"payment_status" gorm:"default:'pending'"`
	OrderDate         time.Time   `json:"order_date"`
	PaymentID         string      `json:"payment_id" gorm:"index"`
	PayerID           string      `json:"payer_id"`
	TotalAmount       float64     `json:"total_amount"`
	FulfillmentStatus string      `json:"fulfillment_status" gorm:"default:'pending'"`
	Lines             []OrderLine `json:"lines" gorm:"foreignKey:OrderID"`
}

// OrderLine snapshots the purchased item as of order time, deliberately
// decoupled from the catalog so later edits never alter historical orders
type OrderLine struct {
	gorm.Model
	OrderID        uint    `json:"-" gorm:"index;not null"`
	ItemID         string  `json:"item_id" gorm:"not null"`
	ItemType       string  `json:"item_type" gorm:"not null"` // Course, TestSeries
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	InstructorID   uint    `json:"instructor_id"`
	InstructorName string  `json:"instructor_name"`
}
