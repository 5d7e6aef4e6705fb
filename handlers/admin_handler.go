package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/edubrain/fee_tracker/notifications"
	"github.com/edubrain/fee_tracker/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultReminderLimit = 100

type RegisterStudentRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Course   string  `json:"course"`
	TotalFee float64 `json:"total_fee" validate:"required,gt=0"`
	DueDate  string  `json:"due_date" validate:"required"`
}

type PayRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

type AdminHandler struct {
	ledger FeeLedger
}

func NewAdminHandler(ledger FeeLedger) *AdminHandler {
	return &AdminHandler{ledger: ledger}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.ledger.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(stats)
}

func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.ledger.ListStudents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

func (h *AdminHandler) RegisterStudent(c *fiber.Ctx) error {
	var req RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "due_date must be YYYY-MM-DD"})
	}

	student, creds, err := h.ledger.RegisterStudent(services.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Course:   req.Course,
		TotalFee: req.TotalFee,
		DueDate:  dueDate,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register student"})
	}

	go notifications.SendEmail(
		student.Name,
		student.Email,
		"Welcome to eDU Brain Education",
		fmt.Sprintf("<h1>Welcome!</h1><p>Your student account has been created. Your username is <b>%s</b>; your administrator will share your password with you.</p>", creds.Username),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Student added",
		"username": creds.Username,
		"password": creds.Password,
	})
}

func (h *AdminHandler) RecordPayment(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := h.ledger.ApplyPayment(uint(studentID), req.Amount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	return c.JSON(fiber.Map{
		"message": "Payment updated",
		"student": student,
	})
}

func (h *AdminHandler) ListReminders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultReminderLimit)
	if limit <= 0 || limit > defaultReminderLimit {
		limit = defaultReminderLimit
	}

	entries, err := h.ledger.RecentReminders(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(entries)
}
