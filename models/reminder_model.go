package models

import (
	"time"
)

const ReminderStatusSent = "Sent"

// Reminder is an append-only log entry for a dispatched fee reminder.
// Rows are never updated or deleted.
type Reminder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	ReminderDate time.Time `gorm:"type:date;not null" json:"reminder_date"`
	ReminderType string    `gorm:"size:50" json:"reminder_type"`
	Status       string    `gorm:"size:20;not null" json:"status"`
	Message      string    `gorm:"type:text" json:"message"`

	Student Student `gorm:"foreignkey:StudentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
