package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/students/controller"
)

// Prefix: /api/students
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.GetAll)
	students.Get("/:id", ctrl.GetByID)
	students.Post("/", ctrl.Create)
	students.Post("/bulk", ctrl.BulkCreate)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
