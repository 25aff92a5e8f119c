package services

import (
	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

func ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := config.DB.Preload("User").Preload("Membership").Find(&payments).Error
	return payments, err
}

func FindPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// PaymentStatusForMethod decides the initial status: cash settles
// immediately, electronic methods stay pending until confirmed.
func PaymentStatusForMethod(method string) string {
	if method == models.PaymentMethodCash {
		return models.PaymentCompleted
	}
	return models.PaymentPending
}

// CreatePayment persists the payment with its status already decided.
func CreatePayment(payment *models.Payment) error {
	payment.Status = PaymentStatusForMethod(payment.Method)
	return config.DB.Create(payment).Error
}
