package catalog

import "gorm.io/gorm"

// TestSeries is a purchasable bundle of mock tests
type TestSeries struct {
	gorm.Model
	PublicID       string     `json:"public_id" gorm:"uniqueIndex;not null"`
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Level          string     `json:"level"`
	Price          float64    `json:"price" gorm:"default:0"` // cost of the whole bundle
	Image          string     `json:"image"`
	InstructorID   uint       `json:"instructor_id" gorm:"index;not null"`
	InstructorName string     `json:"instructor_name"`
	IsPublished    bool       `json:"is_published" gorm:"default:false"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
	Tests          []MockTest `json:"tests" gorm:"foreignKey:SeriesID"`
}
