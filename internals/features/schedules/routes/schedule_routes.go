package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/schedules/controller"
)

// Prefix: /api/schedules
func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)

	schedules := api.Group("/schedules")
	schedules.Get("/", ctrl.GetAll)
	schedules.Post("/", ctrl.Create)
	schedules.Post("/bulk", ctrl.BulkCreate)
	schedules.Delete("/:id", ctrl.Delete)
}
