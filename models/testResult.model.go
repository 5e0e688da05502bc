package models

import (
	"time"

	"gorm.io/gorm"
)

// TestResult stores a graded mock-test attempt
type TestResult struct {
	gorm.Model
	UserID       uint         `json:"user_id" gorm:"index;not null"`
	UserName     string       `json:"user_name"`
	UserEmail    string       `json:"user_email"`
	TestID       string       `json:"test_id" gorm:"index;not null"`
	TestTitle    string       `json:"test_title"`
	Score        int          `json:"score" gorm:"default:0"`
	TotalPoints  int          `json:"total_points" gorm:"default:0"`
	Accuracy     float64      `json:"accuracy" gorm:"default:0"` // percentage
	ResultStatus string       `json:"result_status" gorm:"default:'Failed'"` // Passed, Failed
	Answers      []TestAnswer `json:"answers" gorm:"foreignKey:TestResultID"`
	AttemptedAt  time.Time    `json:"attempted_at"`
}

// TestAnswer stores one answered question for the detailed report
type TestAnswer struct {
	gorm.Model
	TestResultID uint   `json:"-" gorm:"index;not null"`
	QuestionID   uint   `json:"question_id"`
	Response     string `json:"response" gorm:"type:text"` // raw user response (option IDs or free text)
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int    `json:"points_earned"`
}
