package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupRoutes "tutortrack_backend/internals/features/backup/routes"
	paymentRoutes "tutortrack_backend/internals/features/payments/routes"
	reportRoutes "tutortrack_backend/internals/features/reports/routes"
	scheduleRoutes "tutortrack_backend/internals/features/schedules/routes"
	studentRoutes "tutortrack_backend/internals/features/students/routes"
	feeRoutes "tutortrack_backend/internals/features/studentfees/routes"
)

// SetupRoutes mendaftarkan seluruh endpoint aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	studentRoutes.StudentRoutes(api, db)
	scheduleRoutes.ScheduleRoutes(api, db)
	paymentRoutes.PaymentRoutes(api, db)
	feeRoutes.StudentFeeRoutes(api, db)
	reportRoutes.ReportRoutes(api, db)
	backupRoutes.BackupRoutes(api, db)
}
