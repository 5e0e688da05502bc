package catalog

import "gorm.io/gorm"

// Question types supported by the test player
const (
	QuestionTypeMCQ       = "MCQ"
	QuestionTypeMSQ       = "MSQ"
	QuestionTypeSpeaking  = "Speaking"
	QuestionTypeWriting   = "Writing"
	QuestionTypeListening = "Listening"
)

// MockTest is a timed test, optionally part of a test series
type MockTest struct {
	gorm.Model
	SeriesID       *uint      `json:"series_id" gorm:"index"`
	PublicID       string     `json:"public_id" gorm:"uniqueIndex;not null"`
	InstructorID   uint       `json:"instructor_id" gorm:"index;not null"`
	InstructorName string     `json:"instructor_name"`
	Title          string     `json:"title"`
	Category       string     `json:"category"` // e.g. Japanese
	Level          string     `json:"level"`
	Price          float64    `json:"price" gorm:"default:0"` // 0 = free
	IsPublished    bool       `json:"is_published" gorm:"default:false"`
	TimeLimit      int        `json:"time_limit" gorm:"default:30"`    // minutes
	PassingScore   int        `json:"passing_score" gorm:"default:60"` // percentage to pass
	IsDeleted      bool       `json:"-" gorm:"default:false"`
	Questions      []Question `json:"questions" gorm:"foreignKey:TestID"`
}

// Question is one question of a mock test
type Question struct {
	gorm.Model
	TestID       uint   `json:"-" gorm:"index;not null"`
	Type         string `json:"type" gorm:"not null"` // MCQ, MSQ, Speaking, Writing, Listening
	QuestionText string `json:"question_text" gorm:"type:text;not null"`
	MediaURL     string `json:"media_url"` // for Listening/Speaking questions

	// Reference answer for manual review of Writing/Speaking responses
	CorrectAnswerText string `json:"correct_answer_text" gorm:"type:text"`

	Points  int              `json:"points" gorm:"default:1"`
	Options []QuestionOption `json:"options" gorm:"foreignKey:QuestionID"`
}

// QuestionOption is one selectable option of an MCQ/MSQ/Listening question
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"-" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
