package catalog

import "gorm.io/gorm"

// Course is a purchasable course with an ordered curriculum of lectures.
// PublicID is the identifier the rest of the system references; it is a
// uuid, so it can never collide with a test series ID.
type Course struct {
	gorm.Model
	PublicID       string    `json:"public_id" gorm:"uniqueIndex;not null"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	Description    string    `json:"description"`
	Category       string    `json:"category"` // e.g. Japanese, German
	Level          string    `json:"level"`    // Beginner, Intermediate, Advanced
	Price          float64   `json:"price" gorm:"default:0"`
	Image          string    `json:"image"`
	InstructorID   uint      `json:"instructor_id" gorm:"index;not null"`
	InstructorName string    `json:"instructor_name"`
	IsPublished    bool      `json:"is_published" gorm:"default:false"`
	IsDeleted      bool      `json:"-" gorm:"default:false"`
	Curriculum     []Lecture `json:"curriculum" gorm:"foreignKey:CourseID"`
}

// Lecture is one curriculum entry of a course
type Lecture struct {
	gorm.Model
	CourseID    uint   `json:"-" gorm:"index;not null"`
	PublicID    string `json:"public_id" gorm:"uniqueIndex;not null"`
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	FreePreview bool   `json:"free_preview" gorm:"default:false"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
