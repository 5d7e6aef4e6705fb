package handlers

import (
	"github.com/edubrain/fee_tracker/models"
	"github.com/edubrain/fee_tracker/services"
)

// FeeLedger is the persistence surface the HTTP layer depends on.
// services.FeeService is the production implementation; tests substitute
// an in-memory fake.
type FeeLedger interface {
	FindUserByUsername(username string) (*models.User, error)
	RegisterStudent(input services.RegisterInput) (*models.Student, services.Credentials, error)
	ApplyPayment(studentID uint, amount float64) (*models.Student, error)
	StudentByUserID(userID uint) (*models.Student, error)
	ListStudents() ([]models.Student, error)
	Stats() (services.DashboardStats, error)
	RecentReminders(limit int) ([]services.ReminderEntry, error)
}
