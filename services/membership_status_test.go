package services

import (
	"testing"
	"time"

	"github.com/Brandon0902/HumanSport/models"
)

func paymentUpdatedDaysAgo(days int, now time.Time) models.Payment {
	p := models.Payment{Status: models.PaymentCompleted}
	p.UpdatedAt = now.AddDate(0, 0, -days)
	return p
}

func TestDaysElapsed(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		want int
	}{
		{"same instant", now, 0},
		{"23 hours is zero days", now.Add(-23 * time.Hour), 0},
		{"exactly one day", now.AddDate(0, 0, -1), 1},
		{"thirty days", now.AddDate(0, 0, -30), 30},
		{"thirty days and some hours still thirty", now.AddDate(0, 0, -30).Add(-6 * time.Hour), 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysElapsed(tc.from, now); got != tc.want {
				t.Fatalf("DaysElapsed = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeMembershipStatus_Boundary(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	plan := models.Membership{DurationDays: 30}

	tests := []struct {
		name          string
		daysAgo       int
		wantActive    bool
		wantRemaining int
	}{
		{"fresh payment", 0, true, 30},
		{"mid period", 15, true, 15},
		{"exactly durationDays still active", 30, true, 0},
		{"one past durationDays expired", 31, false, 0},
		{"long expired", 90, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeMembershipStatus(paymentUpdatedDaysAgo(tc.daysAgo, now), plan, now)
			if got.Active != tc.wantActive {
				t.Fatalf("Active = %v, want %v", got.Active, tc.wantActive)
			}
			if !tc.wantActive {
				if got.Reason != "no active membership" {
					t.Fatalf("Reason = %q, want %q", got.Reason, "no active membership")
				}
				if got.RemainingDays != nil || got.Membership != nil || got.Payment != nil {
					t.Fatal("inactive result must not carry membership details")
				}
				return
			}
			if got.RemainingDays == nil || *got.RemainingDays != tc.wantRemaining {
				t.Fatalf("RemainingDays = %v, want %d", got.RemainingDays, tc.wantRemaining)
			}
			wantExp := now.AddDate(0, 0, tc.wantRemaining)
			if got.ExpirationDate == nil || !got.ExpirationDate.Equal(wantExp) {
				t.Fatalf("ExpirationDate = %v, want %v", got.ExpirationDate, wantExp)
			}
		})
	}
}

func TestLatestCompletedPayment(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	pending := models.Payment{Status: models.PaymentPending}
	pending.UpdatedAt = now

	failed := models.Payment{Status: models.PaymentFailed}
	failed.UpdatedAt = now

	old := paymentUpdatedDaysAgo(40, now)
	old.Amount = 10
	recent := paymentUpdatedDaysAgo(5, now)
	recent.Amount = 20

	t.Run("picks most recently updated completed", func(t *testing.T) {
		got, ok := LatestCompletedPayment([]models.Payment{old, pending, recent, failed})
		if !ok {
			t.Fatal("expected a completed payment")
		}
		if got.Amount != 20 {
			t.Fatalf("selected payment amount = %v, want the most recent one", got.Amount)
		}
	})

	t.Run("order of the slice does not matter", func(t *testing.T) {
		got, ok := LatestCompletedPayment([]models.Payment{recent, old})
		if !ok || got.Amount != 20 {
			t.Fatalf("got %+v ok=%v, want the most recent completed payment", got, ok)
		}
	})

	t.Run("pending and failed never count", func(t *testing.T) {
		if _, ok := LatestCompletedPayment([]models.Payment{pending, failed}); ok {
			t.Fatal("expected no completed payment")
		}
	})

	t.Run("empty history", func(t *testing.T) {
		if _, ok := LatestCompletedPayment(nil); ok {
			t.Fatal("expected no completed payment")
		}
	})
}

func TestCompletedPaymentsDoNotStack(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	plan := models.Membership{DurationDays: 30}

	// Two completed payments, 70 and 40 days old. Together they would cover
	// 60 days, but the membership is judged on the latest one alone, so the
	// user is expired.
	history := []models.Payment{
		paymentUpdatedDaysAgo(70, now),
		paymentUpdatedDaysAgo(40, now),
	}

	latest, ok := LatestCompletedPayment(history)
	if !ok {
		t.Fatal("expected a completed payment")
	}
	if got := DaysElapsed(latest.UpdatedAt, now); got != 40 {
		t.Fatalf("selected payment is %d days old, want 40", got)
	}

	status := ComputeMembershipStatus(latest, plan, now)
	if status.Active {
		t.Fatal("membership must be expired: payment periods do not accumulate")
	}
}

func TestComputeMembershipStatus_ReturnsMatchedRecords(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	plan := models.Membership{Name: "monthly", DurationDays: 30}
	payment := paymentUpdatedDaysAgo(10, now)
	payment.Amount = 99.99

	got := ComputeMembershipStatus(payment, plan, now)
	if !got.Active {
		t.Fatal("expected active membership")
	}
	if got.Membership == nil || got.Membership.Name != "monthly" {
		t.Fatalf("Membership = %+v, want the matched plan", got.Membership)
	}
	if got.Payment == nil || got.Payment.Amount != 99.99 {
		t.Fatalf("Payment = %+v, want the matched payment", got.Payment)
	}
}
