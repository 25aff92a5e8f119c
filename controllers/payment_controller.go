package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

func ListPayments(c *gin.Context) {
	payments, err := services.ListPayments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list payments", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := services.FindPaymentByID(id)
	if err != nil {
		respondLookupError(c, err, "payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

type CreatePaymentInput struct {
	UserID       uint    `json:"userId"`
	MembershipID uint    `json:"membershipId"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
}

// CreatePayment validates the references, persists the payment (cash settles
// immediately) and notifies the queue plus the payer. There is no
// transaction around lookup + insert; a failed insert after successful
// lookups surfaces as a plain 500.
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var errs []utils.FieldError
	if input.UserID == 0 {
		errs = append(errs, utils.FieldError{Field: "userId", Message: "user id is required"})
	}
	if input.MembershipID == 0 {
		errs = append(errs, utils.FieldError{Field: "membershipId", Message: "membership id is required"})
	}
	if input.Amount <= 0 {
		errs = append(errs, utils.FieldError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if !models.ValidPaymentMethod(input.Method) {
		errs = append(errs, utils.FieldError{Field: "method", Message: "method must be paypal or cash"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	user, err := services.FindUserByID(input.UserID)
	if err != nil {
		respondLookupError(c, err, "user not found")
		return
	}

	membership, err := services.FindMembershipByID(input.MembershipID)
	if err != nil {
		respondLookupError(c, err, "membership not found")
		return
	}

	payment := models.Payment{
		UserID:       input.UserID,
		MembershipID: input.MembershipID,
		Amount:       input.Amount,
		Method:       input.Method,
	}

	if err := services.CreatePayment(&payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create payment", "error": err.Error()})
		return
	}

	go func() {
		event := services.PaymentRecordedEvent{
			PaymentID:    payment.ID,
			UserID:       payment.UserID,
			MembershipID: payment.MembershipID,
			Amount:       payment.Amount,
			Method:       payment.Method,
			Status:       payment.Status,
		}
		_ = services.PublishPaymentRecorded(context.Background(), event)
	}()

	if payment.Status == models.PaymentCompleted {
		go func() {
			if err := utils.SendPaymentReceiptEmail(user.Email, membership.Name, payment.Amount); err != nil {
				log.Printf("receipt mail to %s failed: %v", user.Email, err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"message": "payment recorded", "payment": payment})
}
