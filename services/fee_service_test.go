package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/edubrain/fee_tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*FeeService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true})
	gdb, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewFeeService(gdb), mock
}

func TestListStudentsOrdersByPrimaryKey(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "students" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total_fee", "paid_amount", "payment_status"}).
			AddRow(1, "Jane Doe", 5000.0, 0.0, models.PaymentStatusPending).
			AddRow(2, "John Roe", 3000.0, 3000.0, models.PaymentStatusPaid))

	students, err := service.ListStudents()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, uint(1), students[0].ID)
	assert.Equal(t, "John Roe", students[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverduePendingFiltersByStatusAndDueDate(t *testing.T) {
	service, mock := newTestService(t)
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "students" WHERE payment_status = \$1 AND due_date <= \$2`).
		WithArgs(models.PaymentStatusPending, models.DateOnly(today)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total_fee", "paid_amount", "payment_status"}).
			AddRow(1, "Jane Doe", 1000.0, 0.0, models.PaymentStatusPending))

	students, err := service.OverduePending(today)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Jane Doe", students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReminderIsASingleTransaction(t *testing.T) {
	service, mock := newTestService(t)
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "students" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reminder := models.Reminder{
		StudentID:    1,
		ReminderDate: models.DateOnly(today),
		ReminderType: "SMS/Email",
		Status:       models.ReminderStatusSent,
		Message:      "test",
	}
	err := service.RecordReminder(&reminder, today)
	require.NoError(t, err)
	assert.Equal(t, uint(1), reminder.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReminderRollsBackOnStampFailure(t *testing.T) {
	service, mock := newTestService(t)
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "students" SET`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	reminder := models.Reminder{StudentID: 1, ReminderDate: models.DateOnly(today)}
	err := service.RecordReminder(&reminder, today)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsAggregates(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_fee - paid_amount\), 0\) FROM "students" WHERE payment_status = \$1`).
		WithArgs(models.PaymentStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1500.0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(paid_amount\), 0\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(8500.0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE payment_status = \$1 AND due_date < \$2`).
		WithArgs(models.PaymentStatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	stats, err := service.Stats()
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{
		TotalStudents: 3,
		PendingFees:   1500,
		CollectedFees: 8500,
		OverdueCount:  2,
	}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername(t *testing.T) {
	service, mock := newTestService(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("admin", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).
				AddRow(1, "admin", models.RoleAdmin))

		user, err := service.FindUserByUsername("admin")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}))

		_, err := service.FindUserByUsername("ghost")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
