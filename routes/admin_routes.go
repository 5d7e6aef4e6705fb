package routes

import (
	"github.com/edubrain/fee_tracker/handlers"
	"github.com/edubrain/fee_tracker/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler) {
	api := app.Group("/api")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", h.GetStats)
	admin.Get("/students", h.ListStudents)
	admin.Post("/students", h.RegisterStudent)
	admin.Patch("/students/:id/pay", h.RecordPayment)
	admin.Get("/reminders", h.ListReminders)
}
