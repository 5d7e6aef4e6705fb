package routes

import (
	"github.com/edubrain/fee_tracker/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api")

	api.Post("/login", h.Login)
}
