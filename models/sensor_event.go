package models

import (
	"gorm.io/gorm"
)

// SensorEvent is a persisted snapshot of a reading from the gym's proximity
// sensor. Hora keeps the reading-time label as the hardware reports it.
type SensorEvent struct {
	gorm.Model
	Name    string `json:"name"`
	Hora    string `gorm:"not null" json:"hora"`
	Lectura string `gorm:"not null" json:"lectura"`
}
