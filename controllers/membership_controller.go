package controllers

import (
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

func ListMemberships(c *gin.Context) {
	memberships, err := services.ListMemberships()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list memberships", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, memberships)
}

type CreateMembershipInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	Status       string  `json:"status"`
}

func CreateMembership(c *gin.Context) {
	var input CreateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var errs []utils.FieldError
	errs = utils.Require(errs, "name", input.Name, "membership name is required")
	errs = utils.Require(errs, "description", input.Description, "membership description is required")
	if input.Price < 0 {
		errs = append(errs, utils.FieldError{Field: "price", Message: "price must not be negative"})
	}
	if input.DurationDays <= 0 {
		errs = append(errs, utils.FieldError{Field: "durationDays", Message: "durationDays must be a positive number"})
	}
	if input.Status == "" {
		input.Status = models.StatusActive
	} else if input.Status != models.StatusActive && input.Status != models.StatusInactive {
		errs = append(errs, utils.FieldError{Field: "status", Message: "status must be active or inactive"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	membership := models.Membership{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		Status:       input.Status,
	}

	if err := services.CreateMembership(&membership); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create membership", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "membership created", "membership": membership})
}

func UpdateMembership(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.MembershipUpdateInput
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

	membership, err := services.UpdateMembership(id, input)
	if err != nil {
		respondLookupError(c, err, "membership not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "membership updated", "membership": membership})
}

// DeleteMembership deactivates the plan; past payments keep referencing it.
func DeleteMembership(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	membership, err := services.DeactivateMembership(id)
	if err != nil {
		respondLookupError(c, err, "membership not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "membership deactivated", "membership": membership})
}
