package main

import (
	"log"
	"time"

	config "github.com/edubrain/fee_tracker/configs"
	"github.com/edubrain/fee_tracker/database"
	"github.com/edubrain/fee_tracker/handlers"
	"github.com/edubrain/fee_tracker/jobs"
	"github.com/edubrain/fee_tracker/notifications"
	"github.com/edubrain/fee_tracker/routes"
	"github.com/edubrain/fee_tracker/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db := database.ConnectDB()
	database.Migrate(db)
	database.SeedAdmin(db)
	notifications.InitEmailService()

	ledger := services.NewFeeService(db)

	// 60s cadence mirrors the demo behavior; production runs daily
	// (e.g. "0 9 * * *").
	schedule := config.ConfigOr("REMINDER_SCHEDULE", "@every 1m")
	c := cron.New()
	reminderJob := jobs.NewReminderJob(ledger)
	if _, err := c.AddJob(schedule, reminderJob); err != nil {
		log.Fatalf("🔥 Invalid reminder schedule %q: %v", schedule, err)
	}
	c.Start()
	defer c.Stop()
	log.Println("✅ Cron job for fee reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "eDU Brain Fee Tracker",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to eDU Brain Fee Tracker API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(ledger))
	routes.AdminRoutes(app, handlers.NewAdminHandler(ledger))
	routes.StudentRoutes(app, handlers.NewStudentHandler(ledger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "3000")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
