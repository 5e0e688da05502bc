package models

import "gorm.io/gorm"

// Resource is a language-learning reference unit (alphabet, grammar,
// vocabulary...) browsable outside the paid catalog
type Resource struct {
	gorm.Model
	Language  string          `json:"language" gorm:"index;not null"` // English, Japanese, German, Sanskrit
	Category  string          `json:"category" gorm:"not null"`       // Alphabet, Grammar, Vocabulary, Stories, AdvancedPractice
	Level     int             `json:"level" gorm:"default:1"`
	SubType   string          `json:"sub_type" gorm:"default:'General'"` // e.g. Kanji, Hiragana, Tenses
	IsFree    bool            `json:"is_free" gorm:"default:false"`
	Title     string          `json:"title" gorm:"not null"`
	Entries   []ResourceEntry `json:"entries" gorm:"foreignKey:ResourceID"`
	IsDeleted bool            `json:"-" gorm:"default:false"`
}

// ResourceEntry is one term/rule inside a resource
type ResourceEntry struct {
	gorm.Model
	ResourceID         uint   `json:"-" gorm:"index;not null"`
	Term               string `json:"term"`
	Pronunciation      string `json:"pronunciation"`
	TranslationHindi   string `json:"translation_hindi"`
	TranslationMarathi string `json:"translation_marathi"`
	TranslationEnglish string `json:"translation_english"`
	Definition         string `json:"definition"`
	ExampleSentence    string `json:"example_sentence"`
	AudioURL           string `json:"audio_url"`
	Image              string `json:"image"`
}
