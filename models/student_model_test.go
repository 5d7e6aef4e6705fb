package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		totalFee float64
		paid     float64
		want     string
	}{
		{"nothing paid", 5000, 0, PaymentStatusPending},
		{"partially paid", 5000, 4999.99, PaymentStatusPending},
		{"exactly paid", 5000, 5000, PaymentStatusPaid},
		{"over-paid", 5000, 6000, PaymentStatusPaid},
		{"zero fee", 0, 0, PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatusFor(tt.totalFee, tt.paid))
		})
	}
}

func TestApplyPaymentIsCumulative(t *testing.T) {
	a := Student{TotalFee: 1000, PaymentStatus: PaymentStatusPending}
	a.ApplyPayment(300)
	a.ApplyPayment(700)

	b := Student{TotalFee: 1000, PaymentStatus: PaymentStatusPending}
	b.ApplyPayment(1000)

	assert.Equal(t, b.PaidAmount, a.PaidAmount)
	assert.Equal(t, PaymentStatusPaid, a.PaymentStatus)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
}

func TestApplyPaymentRecomputesStatusEveryTime(t *testing.T) {
	s := Student{TotalFee: 1000, PaymentStatus: PaymentStatusPending}

	s.ApplyPayment(400)
	assert.Equal(t, PaymentStatusPending, s.PaymentStatus)

	s.ApplyPayment(600)
	assert.Equal(t, PaymentStatusPaid, s.PaymentStatus)

	// A refund flips the record back to Pending.
	s.ApplyPayment(-500)
	assert.Equal(t, PaymentStatusPending, s.PaymentStatus)
	assert.Equal(t, 500.0, s.PaidAmount)
}

func TestDueAmountMayGoNegative(t *testing.T) {
	s := Student{TotalFee: 1000}
	s.ApplyPayment(1500)

	assert.Equal(t, -500.0, s.DueAmount())
}

func TestCooldownElapsed(t *testing.T) {
	today := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	day := func(offset int) *time.Time {
		d := DateOnly(today).AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name         string
		lastReminder *time.Time
		want         bool
	}{
		{"never reminded", nil, true},
		{"reminded today", day(0), false},
		{"reminded yesterday", day(-1), false},
		{"reminded two days ago", day(-2), true},
		{"reminded three days ago", day(-3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Student{LastReminderDate: tt.lastReminder}
			assert.Equal(t, tt.want, s.CooldownElapsed(today))
		})
	}
}

func TestCooldownIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2024, 3, 8, 23, 59, 0, 0, time.UTC)
	s := Student{LastReminderDate: &last}

	earlyMorning := time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.True(t, s.CooldownElapsed(earlyMorning))
}
