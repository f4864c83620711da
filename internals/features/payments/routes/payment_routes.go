package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/payments/controller"
)

// Prefix: /api/payments
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", ctrl.GetAll)
	payments.Post("/", ctrl.Create)
	payments.Post("/bulk", ctrl.BulkCreate)
	payments.Delete("/:id", ctrl.Delete)
}
