package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var bootTime = time.Now()

// BaseRoutes: liveness di "/" dan health check dengan ping DB.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TutorTrack API")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "up"

		sqlDB, err := db.DB()
		if err != nil {
			status, dbStatus = "degraded", "down"
		} else if err := sqlDB.Ping(); err != nil {
			status, dbStatus = "degraded", "down"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"uptime":   time.Since(bootTime).Round(time.Second).String(),
		})
	})
}
