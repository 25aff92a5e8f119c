package models

import (
	"gorm.io/gorm"
)

// One Course with its weekly schedule entries.
type Course struct {
	gorm.Model
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `gorm:"not null" json:"description"`
	Capacity     int        `gorm:"not null" json:"capacity"`
	Status       string     `gorm:"default:active" json:"status"`
	InstructorID uint       `json:"instructorId"`
	Instructor   Instructor `json:"instructor"`
	ClassDays    []ClassDay `json:"classDays"`
}

// Each ClassDay is one scheduled slot ("Monday 18:00" between two dates).
type ClassDay struct {
	gorm.Model
	CourseID  uint   `json:"-"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
