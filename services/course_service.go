package services

import (
	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type CourseUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

// ListCourses filters by status unless "all" (or empty) is given. A non-zero
// instructorID narrows the listing to that instructor's courses, which is how
// instructor-role callers only see their own.
func ListCourses(status string, instructorID uint) ([]models.Course, error) {
	query := config.DB.Preload("Instructor").Preload("ClassDays")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if instructorID != 0 {
		query = query.Where("instructor_id = ?", instructorID)
	}

	var courses []models.Course
	err := query.Find(&courses).Error
	return courses, err
}

func FindCourseByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := config.DB.Preload("Instructor").Preload("ClassDays").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func CreateCourse(course *models.Course) error {
	return config.DB.Create(course).Error
}

func UpdateCourseFields(id uint, input CourseUpdateInput) (*models.Course, error) {
	course, err := FindCourseByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		course.Name = input.Name
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Capacity > 0 {
		course.Capacity = input.Capacity
	}
	if input.Status != "" {
		course.Status = input.Status
	}

	if err := config.DB.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// ReplaceCourse is the full-update path: name, description and capacity are
// overwritten together.
func ReplaceCourse(id uint, name, description string, capacity int) (*models.Course, error) {
	course, err := FindCourseByID(id)
	if err != nil {
		return nil, err
	}

	course.Name = name
	course.Description = description
	course.Capacity = capacity

	if err := config.DB.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func DeactivateCourse(id uint) (*models.Course, error) {
	course, err := FindCourseByID(id)
	if err != nil {
		return nil, err
	}
	course.Status = models.StatusInactive
	if err := config.DB.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}
