package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord tracks which lectures of a course a user has viewed. It is
// created once, when the course entitlement is first granted, snapshotting
// the curriculum as of that moment. Lectures added to the course afterwards
// are not retroactively added here.
type ProgressRecord struct {
	gorm.Model
	UserID    uint              `json:"user_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID  string            `json:"course_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	Completed bool              `json:"completed" gorm:"default:false"`
	Lectures  []LectureProgress `json:"lectures" gorm:"foreignKey:ProgressRecordID"`
}

// LectureProgress is one curriculum entry of a progress record
type LectureProgress struct {
	gorm.Model
	ProgressRecordID uint       `json:"-" gorm:"index;not null"`
	LectureID        string     `json:"lecture_id" gorm:"index;not null"`
	Title            string     `json:"title"`
	OrderIndex       int        `json:"order_index" gorm:"default:0"`
	Viewed           bool       `json:"viewed" gorm:"default:false"`
	DateViewed       *time.Time `json:"date_viewed"`
}
