package services

import (
	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type MembershipUpdateInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	Status       string  `json:"status"`
}

func ListMemberships() ([]models.Membership, error) {
	var memberships []models.Membership
	err := config.DB.Find(&memberships).Error
	return memberships, err
}

func FindMembershipByID(id uint) (*models.Membership, error) {
	var membership models.Membership
	if err := config.DB.First(&membership, id).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

func CreateMembership(membership *models.Membership) error {
	return config.DB.Create(membership).Error
}

func UpdateMembership(id uint, input MembershipUpdateInput) (*models.Membership, error) {
	membership, err := FindMembershipByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		membership.Name = input.Name
	}
	if input.Description != "" {
		membership.Description = input.Description
	}
	if input.Price > 0 {
		membership.Price = input.Price
	}
	if input.DurationDays > 0 {
		membership.DurationDays = input.DurationDays
	}
	if input.Status != "" {
		membership.Status = input.Status
	}

	if err := config.DB.Save(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}

func DeactivateMembership(id uint) (*models.Membership, error) {
	membership, err := FindMembershipByID(id)
	if err != nil {
		return nil, err
	}
	membership.Status = models.StatusInactive
	if err := config.DB.Save(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}
