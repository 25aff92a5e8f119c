package models

import (
	"time"

	"gorm.io/gorm"
)

type Instructor struct {
	gorm.Model
	Name       string    `gorm:"not null" json:"name"`
	Speciality string    `gorm:"not null" json:"speciality"`
	Birthdate  time.Time `json:"birthdate"`
}
