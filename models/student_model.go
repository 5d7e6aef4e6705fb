package models

import (
	"time"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// ReminderCooldownDays is the minimum number of days between two
// reminders for the same student.
const ReminderCooldownDays = 2

// Student is one student's fee record. PaymentStatus is derived from
// TotalFee/PaidAmount and is never set independently; LastReminderDate
// is written only by the reminder sweep.
type Student struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Phone            string     `gorm:"size:50" json:"phone"`
	Email            string     `gorm:"size:255" json:"email"`
	Course           string     `gorm:"size:255" json:"course"`
	TotalFee         float64    `gorm:"type:numeric(10,2);not null" json:"total_fee"`
	PaidAmount       float64    `gorm:"type:numeric(10,2);not null;default:0" json:"paid_amount"`
	DueDate          time.Time  `gorm:"type:date;not null" json:"due_date"`
	PaymentStatus    string     `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	LastReminderDate *time.Time `gorm:"type:date" json:"last_reminder_date"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentStatusFor derives the payment status: Paid iff the paid amount
// covers the total fee.
func PaymentStatusFor(totalFee, paidAmount float64) string {
	if paidAmount >= totalFee {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

// ApplyPayment adds amount to the paid total and recomputes the status.
// Amounts are not bounds-checked: negative and overshooting payments are
// accepted as-is.
func (s *Student) ApplyPayment(amount float64) {
	s.PaidAmount += amount
	s.PaymentStatus = PaymentStatusFor(s.TotalFee, s.PaidAmount)
}

// DueAmount may be negative when a student has over-paid.
func (s *Student) DueAmount() float64 {
	return s.TotalFee - s.PaidAmount
}

// CooldownElapsed reports whether the student may be reminded on the
// given day. Comparisons are date-only so the result does not depend on
// the time of day the sweep runs.
func (s *Student) CooldownElapsed(today time.Time) bool {
	if s.LastReminderDate == nil {
		return true
	}
	last := DateOnly(*s.LastReminderDate)
	return !last.AddDate(0, 0, ReminderCooldownDays).After(DateOnly(today))
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
