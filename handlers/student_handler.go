package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type StudentHandler struct {
	ledger FeeLedger
}

func NewStudentHandler(ledger FeeLedger) *StudentHandler {
	return &StudentHandler{ledger: ledger}
}

// Me returns the caller's own fee record, keyed by the account id
// embedded in the token. Arbitrary ids are not accepted.
func (h *StudentHandler) Me(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := claims["id"].(float64)

	student, err := h.ledger.StudentByUserID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(student)
}
