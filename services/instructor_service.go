package services

import (
	"time"

	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type InstructorUpdateInput struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Birthdate  string `json:"birthdate"`
}

func ListInstructors() ([]models.Instructor, error) {
	var instructors []models.Instructor
	err := config.DB.Find(&instructors).Error
	return instructors, err
}

func FindInstructorByID(id uint) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := config.DB.First(&instructor, id).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

func CreateInstructor(instructor *models.Instructor) error {
	return config.DB.Create(instructor).Error
}

func UpdateInstructor(id uint, input InstructorUpdateInput) (*models.Instructor, error) {
	instructor, err := FindInstructorByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		instructor.Name = input.Name
	}
	if input.Speciality != "" {
		instructor.Speciality = input.Speciality
	}
	if input.Birthdate != "" {
		if birthdate, err := time.Parse("2006-01-02", input.Birthdate); err == nil {
			instructor.Birthdate = birthdate
		}
	}

	if err := config.DB.Save(instructor).Error; err != nil {
		return nil, err
	}
	return instructor, nil
}

// DeleteInstructor removes the row. Instructors are not soft-deleted.
func DeleteInstructor(id uint) (*models.Instructor, error) {
	instructor, err := FindInstructorByID(id)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Unscoped().Delete(instructor).Error; err != nil {
		return nil, err
	}
	return instructor, nil
}
