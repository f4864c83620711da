package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/studentfees/controller"
)

// Prefix: /api/student-fees
func StudentFeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentFeeController(db)

	fees := api.Group("/student-fees")
	fees.Get("/", ctrl.GetAll)
	fees.Post("/", ctrl.Set)
	fees.Delete("/:id", ctrl.Delete)
}
