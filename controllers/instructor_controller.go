package controllers

import (
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

func ListInstructors(c *gin.Context) {
	instructors, err := services.ListInstructors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list instructors", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func GetInstructor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	instructor, err := services.FindInstructorByID(id)
	if err != nil {
		respondLookupError(c, err, "instructor not found")
		return
	}
	c.JSON(http.StatusOK, instructor)
}

type CreateInstructorInput struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Birthdate  string `json:"birthdate"`
}

func CreateInstructor(c *gin.Context) {
	var input CreateInstructorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var errs []utils.FieldError
	errs = utils.Require(errs, "name", input.Name, "instructor name is required")
	errs = utils.Require(errs, "speciality", input.Speciality, "speciality is required")
	birthdate, ok := utils.ParseBirthdate(input.Birthdate)
	if !ok {
		errs = append(errs, utils.FieldError{Field: "birthdate", Message: "birthdate is invalid, expected YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	instructor := models.Instructor{
		Name:       input.Name,
		Speciality: input.Speciality,
		Birthdate:  birthdate,
	}

	if err := services.CreateInstructor(&instructor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create instructor", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "instructor created", "instructor": instructor})
}

func UpdateInstructor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.InstructorUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	instructor, err := services.UpdateInstructor(id, input)
	if err != nil {
		respondLookupError(c, err, "instructor not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "instructor updated", "instructor": instructor})
}

func DeleteInstructor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	instructor, err := services.DeleteInstructor(id)
	if err != nil {
		respondLookupError(c, err, "instructor not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "instructor deleted", "instructor": instructor})
}
