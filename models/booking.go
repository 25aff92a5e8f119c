package models

import (
	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"userId"`
	User     User   `json:"user"`
	CourseID uint   `gorm:"index;not null" json:"courseId"`
	Course   Course `json:"course"`
	Status   string `gorm:"default:active" json:"status"`
	Comments string `gorm:"default:''" json:"comments"`
}
