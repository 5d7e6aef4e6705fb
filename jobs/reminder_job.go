package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/edubrain/fee_tracker/models"
	"github.com/edubrain/fee_tracker/notifications"
)

// Ledger is the slice of the fee ledger the sweep needs.
type Ledger interface {
	OverduePending(today time.Time) ([]models.Student, error)
	RecordReminder(reminder *models.Reminder, today time.Time) error
}

// ReminderJob is the periodic sweep over overdue fee records. Each
// eligible record gets one reminder log entry and a last_reminder_date
// stamp; a per-record failure is logged and the sweep moves on.
type ReminderJob struct {
	ledger Ledger
	now    func() time.Time
}

func NewReminderJob(ledger Ledger) *ReminderJob {
	return &ReminderJob{ledger: ledger, now: time.Now}
}

// Run executes one sweep. It satisfies cron.Job and can be invoked
// directly for a deterministic run.
func (j *ReminderJob) Run() {
	log.Println("Running job: SendFeeReminders...")

	today := models.DateOnly(j.now())

	students, err := j.ledger.OverduePending(today)
	if err != nil {
		log.Printf("Error querying overdue students: %v", err)
		return
	}

	for _, student := range students {
		if !student.CooldownElapsed(today) {
			continue
		}

		dueAmount := student.DueAmount()
		message := fmt.Sprintf(
			"Dear %s, This is a reminder from eDU Brain Education that your fee of ₹%.2f is pending. Kindly make the payment at the earliest. Thank you.",
			student.Name, dueAmount,
		)

		reminder := models.Reminder{
			StudentID:    student.ID,
			ReminderDate: today,
			ReminderType: "SMS/Email",
			Status:       models.ReminderStatusSent,
			Message:      message,
		}

		if err := j.ledger.RecordReminder(&reminder, today); err != nil {
			log.Printf("Error recording reminder for student %d: %v", student.ID, err)
			continue
		}

		log.Printf("Sending reminder to %s (%s): %s", student.Name, student.Phone, message)

		go notifications.SendEmail(
			student.Name,
			student.Email,
			"Fee Payment Reminder",
			fmt.Sprintf("<p>%s</p>", message),
		)
	}
}
