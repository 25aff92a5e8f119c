package models

import (
	"gorm.io/gorm"
)

const (
	PaymentMethodPaypal = "paypal"
	PaymentMethodCash   = "cash"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Payment struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"userId"`
	User         User       `json:"user"`
	MembershipID uint       `gorm:"index;not null" json:"membershipId"`
	Membership   Membership `json:"membership"`
	Amount       float64    `gorm:"not null" json:"amount"`
	Method       string     `gorm:"not null" json:"method"`
	Status       string     `gorm:"default:pending" json:"status"`
}

func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodPaypal || method == PaymentMethodCash
}
