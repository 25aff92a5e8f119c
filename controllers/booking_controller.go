package controllers

import (
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

func ListBookings(c *gin.Context) {
	bookings, err := services.ListBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list bookings", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := services.FindBookingByID(id)
	if err != nil {
		respondLookupError(c, err, "booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

type CreateBookingInput struct {
	UserID   uint   `json:"userId"`
	CourseID uint   `json:"courseId"`
	Comments string `json:"comments"`
}

// CreateBooking resolves both references before touching the bookings table:
// a missing user or course means 404 and nothing persisted.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var errs []utils.FieldError
	if input.UserID == 0 {
		errs = append(errs, utils.FieldError{Field: "userId", Message: "user id is required"})
	}
	if input.CourseID == 0 {
		errs = append(errs, utils.FieldError{Field: "courseId", Message: "course id is required"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	if _, err := services.FindUserByID(input.UserID); err != nil {
		respondLookupError(c, err, "user not found")
		return
	}
	if _, err := services.FindCourseByID(input.CourseID); err != nil {
		respondLookupError(c, err, "course not found")
		return
	}

	booking := models.Booking{
		UserID:   input.UserID,
		CourseID: input.CourseID,
		Status:   models.StatusActive,
		Comments: input.Comments,
	}

	if err := services.CreateBooking(&booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "booking created", "booking": booking})
}

func UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.BookingUpdateInput
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

	booking, err := services.UpdateBooking(id, input)
	if err != nil {
		respondLookupError(c, err, "booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking updated", "booking": booking})
}

func DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := services.DeactivateBooking(id)
	if err != nil {
		respondLookupError(c, err, "booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted", "booking": booking})
}
