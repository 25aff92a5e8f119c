package services

import (
	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type BookingUpdateInput struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

func ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.Preload("User").Preload("Course").Find(&bookings).Error
	return bookings, err
}

func FindBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Course").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func CreateBooking(booking *models.Booking) error {
	return config.DB.Create(booking).Error
}

func UpdateBooking(id uint, input BookingUpdateInput) (*models.Booking, error) {
	booking, err := FindBookingByID(id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		booking.Status = input.Status
	}
	if input.Comments != "" {
		booking.Comments = input.Comments
	}

	if err := config.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func DeactivateBooking(id uint) (*models.Booking, error) {
	booking, err := FindBookingByID(id)
	if err != nil {
		return nil, err
	}
	booking.Status = models.StatusInactive
	if err := config.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}
