package controllers

import (
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

// ListCourses honors ?status= ("all" disables the filter). Instructor-role
// callers only see courses assigned to them.
func ListCourses(c *gin.Context) {
	var instructorID uint
	if c.GetString("role") == models.RoleInstructor {
		instructorID = c.GetUint("userID")
	}

	courses, err := services.ListCourses(c.Query("status"), instructorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list courses", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	course, err := services.FindCourseByID(id)
	if err != nil {
		respondLookupError(c, err, "course not found")
		return
	}
	c.JSON(http.StatusOK, course)
}

type ClassDayInput struct {
	Day       string `json:"day"`
	Time      string `json:"time"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type CreateCourseInput struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Capacity     int             `json:"capacity"`
	InstructorID uint            `json:"instructorId"`
	ClassDays    []ClassDayInput `json:"classDays"`
}

func CreateCourse(c *gin.Context) {
	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var errs []utils.FieldError
	errs = utils.Require(errs, "name", input.Name, "course name is required")
	errs = utils.Require(errs, "description", input.Description, "course description is required")
	if input.Capacity <= 0 {
		errs = append(errs, utils.FieldError{Field: "capacity", Message: "capacity must be a positive number"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	if _, err := services.FindInstructorByID(input.InstructorID); err != nil {
		respondLookupError(c, err, "instructor not found")
		return
	}

	course := models.Course{
		Name:         input.Name,
		Description:  input.Description,
		Capacity:     input.Capacity,
		Status:       models.StatusActive,
		InstructorID: input.InstructorID,
	}
	for _, day := range input.ClassDays {
		course.ClassDays = append(course.ClassDays, models.ClassDay{
			Day:       day.Day,
			Time:      day.Time,
			StartDate: day.StartDate,
			EndDate:   day.EndDate,
		})
	}

	if err := services.CreateCourse(&course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create course", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "course created", "course": course})
}

func UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.CourseUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Deactivation is one-way; updates may flip to inactive but never back.
	if input.Status != "" && input.Status != models.StatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": []utils.FieldError{
			{Field: "status", Message: "status can only be set to inactive"},
		}})
		return
	}

	course, err := services.UpdateCourseFields(id, input)
	if err != nil {
		respondLookupError(c, err, "course not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "course updated", "course": course})
}

type ReplaceCourseInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

// ReplaceCourse is the PUT path: the three core fields are overwritten at
// once.
func ReplaceCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input ReplaceCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	course, err := services.ReplaceCourse(id, input.Name, input.Description, input.Capacity)
	if err != nil {
		respondLookupError(c, err, "course not found")
		return
	}

	c.JSON(http.StatusOK, course)
}

func DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	course, err := services.DeactivateCourse(id)
	if err != nil {
		respondLookupError(c, err, "course not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "course deleted", "course": course})
}
