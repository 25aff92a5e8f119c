package services

import (
	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type SensorEventUpdateInput struct {
	Hora    string `json:"hora"`
	Lectura string `json:"lectura"`
}

func FindSensorEventByID(id uint) (*models.SensorEvent, error) {
	var event models.SensorEvent
	if err := config.DB.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func CreateSensorEvent(event *models.SensorEvent) error {
	return config.DB.Create(event).Error
}

func UpdateSensorEvent(id uint, input SensorEventUpdateInput) (*models.SensorEvent, error) {
	event, err := FindSensorEventByID(id)
	if err != nil {
		return nil, err
	}

	if input.Hora != "" {
		event.Hora = input.Hora
	}
	if input.Lectura != "" {
		event.Lectura = input.Lectura
	}

	if err := config.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteSensorEvent removes the row outright; sensor snapshots are the one
// collection besides instructors without soft delete.
func DeleteSensorEvent(id uint) (*models.SensorEvent, error) {
	event, err := FindSensorEventByID(id)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Unscoped().Delete(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}
