package services

import (
	"time"

	"github.com/edubrain/fee_tracker/models"
	"github.com/edubrain/fee_tracker/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterInput carries the validated fields for a new student.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Course   string
	TotalFee float64
	DueDate  time.Time
}

// Credentials is the generated login pair returned once at registration.
type Credentials struct {
	Username string
	Password string
}

type DashboardStats struct {
	TotalStudents int64   `json:"totalStudents"`
	PendingFees   float64 `json:"pendingFees"`
	CollectedFees float64 `json:"collectedFees"`
	OverdueCount  int64   `json:"overdueCount"`
}

// ReminderEntry is a reminder row joined with the student's display name.
type ReminderEntry struct {
	ID           uint      `json:"id"`
	StudentID    uint      `json:"student_id"`
	ReminderDate time.Time `json:"reminder_date"`
	ReminderType string    `json:"reminder_type"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	StudentName  string    `json:"student_name"`
}

// FeeService is the shared fee-ledger persistence service. It is the
// single owner of student fee records and the reminder log; both the
// HTTP handlers and the reminder sweep go through it.
type FeeService struct {
	db *gorm.DB
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{db: db}
}

func (s *FeeService) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterStudent creates the login account and the fee record in a
// single transaction. The returned credentials hold the plaintext
// password; only its hash is persisted.
func (s *FeeService) RegisterStudent(input RegisterInput) (*models.Student, Credentials, error) {
	creds := Credentials{
		Username: utils.GenerateUsername(input.Name),
		Password: utils.GeneratePassword(),
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Credentials{}, err
	}

	var student models.Student
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: creds.Username,
			Password: string(hashedPassword),
			Role:     models.RoleStudent,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		student = models.Student{
			UserID:        user.ID,
			Name:          input.Name,
			Phone:         input.Phone,
			Email:         input.Email,
			Course:        input.Course,
			TotalFee:      input.TotalFee,
			PaidAmount:    0,
			DueDate:       models.DateOnly(input.DueDate),
			PaymentStatus: models.PaymentStatusPending,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return nil, Credentials{}, err
	}

	return &student, creds, nil
}

// ApplyPayment adds amount to the student's paid total and recomputes
// the payment status. The row is locked for the duration of the
// transaction so paid_amount and payment_status stay consistent under
// concurrent writes.
func (s *FeeService) ApplyPayment(studentID uint, amount float64) (*models.Student, error) {
	var student models.Student
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&student, studentID).Error; err != nil {
			return err
		}

		student.ApplyPayment(amount)

		return tx.Model(&student).Updates(map[string]interface{}{
			"paid_amount":    student.PaidAmount,
			"payment_status": student.PaymentStatus,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *FeeService) StudentByUserID(userID uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// ListStudents returns all fee records in primary-key order.
func (s *FeeService) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *FeeService) Stats() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := s.db.Model(&models.Student{}).
		Where("payment_status = ?", models.PaymentStatusPending).
		Select("COALESCE(SUM(total_fee - paid_amount), 0)").
		Scan(&stats.PendingFees).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := s.db.Model(&models.Student{}).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&stats.CollectedFees).Error; err != nil {
		return DashboardStats{}, err
	}

	today := models.DateOnly(time.Now())
	if err := s.db.Model(&models.Student{}).
		Where("payment_status = ? AND due_date < ?", models.PaymentStatusPending, today).
		Count(&stats.OverdueCount).Error; err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}

// OverduePending returns the Pending records whose due date has passed.
// The reminder cooldown is checked by the caller.
func (s *FeeService) OverduePending(today time.Time) ([]models.Student, error) {
	var students []models.Student
	err := s.db.
		Where("payment_status = ? AND due_date <= ?", models.PaymentStatusPending, models.DateOnly(today)).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// RecordReminder appends the reminder log entry and stamps the
// student's last_reminder_date in one transaction, so a record is never
// notified without being stamped or vice versa.
func (s *FeeService) RecordReminder(reminder *models.Reminder, today time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reminder).Error; err != nil {
			return err
		}
		return tx.Model(&models.Student{}).
			Where("id = ?", reminder.StudentID).
			Update("last_reminder_date", models.DateOnly(today)).Error
	})
}

// RecentReminders returns the newest reminder entries joined with the
// student name, most recent first (insertion order breaks date ties).
func (s *FeeService) RecentReminders(limit int) ([]ReminderEntry, error) {
	var entries []ReminderEntry
	err := s.db.Table("reminders").
		Select("reminders.id, reminders.student_id, reminders.reminder_date, reminders.reminder_type, reminders.status, reminders.message, students.name AS student_name").
		Joins("JOIN students ON students.id = reminders.student_id").
		Order("reminders.reminder_date DESC, reminders.id DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
