package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/reports/controller"
)

// Prefix: /api/reports
func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/dashboard", ctrl.Dashboard)
	reports.Get("/students", ctrl.Students)
	reports.Get("/schedules", ctrl.Schedules)
	reports.Get("/payments", ctrl.Payments)
	reports.Get("/families", ctrl.Families)
}
