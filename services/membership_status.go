package services

import (
	"errors"
	"time"

	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"

	"gorm.io/gorm"
)

// MembershipStatus is the derived answer to "does this user currently hold
// an active membership". It is computed from payments, never stored.
type MembershipStatus struct {
	Active         bool               `json:"status"`
	Reason         string             `json:"reason,omitempty"`
	RemainingDays  *int               `json:"remainingDays,omitempty"`
	ExpirationDate *time.Time         `json:"expirationDate,omitempty"`
	Membership     *models.Membership `json:"membership,omitempty"`
	Payment        *models.Payment    `json:"payment,omitempty"`
}

// DaysElapsed counts whole days between two instants, truncating the
// fraction. 23 hours is 0 days.
func DaysElapsed(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// ComputeMembershipStatus evaluates one completed payment against its plan.
// The boundary is inclusive: on day durationDays the membership still counts
// as active, which grants a one-day grace period after nominal expiry.
func ComputeMembershipStatus(payment models.Payment, plan models.Membership, now time.Time) MembershipStatus {
	elapsed := DaysElapsed(payment.UpdatedAt, now)
	if elapsed > plan.DurationDays {
		return MembershipStatus{Active: false, Reason: "no active membership"}
	}

	remaining := plan.DurationDays - elapsed
	expiration := now.AddDate(0, 0, remaining)
	return MembershipStatus{
		Active:         true,
		RemainingDays:  &remaining,
		ExpirationDate: &expiration,
		Membership:     &plan,
		Payment:        &payment,
	}
}

// LatestCompletedPayment picks the most recently updated completed payment
// out of a user's history. Earlier completed payments never stack on top of
// it; the latest one alone decides the membership.
func LatestCompletedPayment(payments []models.Payment) (models.Payment, bool) {
	var latest models.Payment
	found := false
	for _, p := range payments {
		if p.Status != models.PaymentCompleted {
			continue
		}
		if !found || p.UpdatedAt.After(latest.UpdatedAt) {
			latest = p
			found = true
		}
	}
	return latest, found
}

// ResolveMembership loads a user's payment history and derives the
// membership state from the latest completed payment.
func ResolveMembership(userID uint) (MembershipStatus, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MembershipStatus{Active: false, Reason: "user not found"}, nil
		}
		return MembershipStatus{}, err
	}

	var payments []models.Payment
	if err := config.DB.Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		return MembershipStatus{}, err
	}

	payment, ok := LatestCompletedPayment(payments)
	if !ok {
		return MembershipStatus{Active: false, Reason: "no active membership"}, nil
	}

	var plan models.Membership
	if err := config.DB.First(&plan, payment.MembershipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MembershipStatus{Active: false, Reason: "no active membership"}, nil
		}
		return MembershipStatus{}, err
	}

	return ComputeMembershipStatus(payment, plan, time.Now()), nil
}
