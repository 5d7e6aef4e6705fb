package routes

import (
	"github.com/edubrain/fee_tracker/handlers"
	"github.com/edubrain/fee_tracker/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, h *handlers.StudentHandler) {
	api := app.Group("/api")

	student := api.Group("/student", middleware.Protected())
	student.Get("/me", h.Me)
}
