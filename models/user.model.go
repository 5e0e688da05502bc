package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage     string    `json:"profile_image" gorm:"default:''"`
	Name             string    `json:"name" gorm:"default:''"`
	Email            string    `json:"email" gorm:"unique;not null"`
	Mobile           string    `json:"mobile" gorm:"default:''"`
	Role             string    `json:"role" gorm:"default:'USER'"` // USER, INSTRUCTOR, ADMIN
	Password         string    `json:"-" gorm:"not null"`
	NativeLanguage   string    `json:"native_language" gorm:"default:'Hindi'"`
	Streak           int       `json:"streak" gorm:"default:0"`
	IsMobileVerified bool      `json:"is_mobile_verified" gorm:"default:false"`
	IsEmailVerified  bool      `json:"is_email_verified" gorm:"default:false"`
	LastLogin        time.Time `json:"last_login"`
	IsDeleted        bool      `json:"-" gorm:"default:false"`
}
