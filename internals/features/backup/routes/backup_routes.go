package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/backup/controller"
	"tutortrack_backend/internals/middlewares"
)

// Prefix: /api — restore dibatasi rate limiter khusus karena destruktif
func BackupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBackupController(db)

	api.Get("/backup", ctrl.Export)
	api.Post("/restore", middlewares.RestoreRateLimiter(), ctrl.Restore)
}
