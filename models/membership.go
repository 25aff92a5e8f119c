package models

import (
	"gorm.io/gorm"
)

// Membership is a catalog plan (price + duration), not a per-user
// subscription. Whether a user holds one is derived from payments.
type Membership struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `gorm:"not null" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	DurationDays int     `gorm:"not null" json:"durationDays"`
	Status       string  `gorm:"default:active" json:"status"`
}
