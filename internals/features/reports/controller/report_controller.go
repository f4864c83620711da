package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/constants"
	paymentModel "tutortrack_backend/internals/features/payments/model"
	"tutortrack_backend/internals/features/reports/service"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
	feeService "tutortrack_backend/internals/features/studentfees/service"
	helper "tutortrack_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Satu kali muat untuk satu report; agregasinya murni in-memory.
func (h *ReportController) load(
	wantSchedules bool,
	wantPayments bool,
) ([]studentModel.StudentModel, []scheduleModel.ScheduleModel, []paymentModel.PaymentModel, *feeService.Resolver, error) {
	var students []studentModel.StudentModel
	if err := h.DB.Find(&students).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	var schedules []scheduleModel.ScheduleModel
	if wantSchedules {
		if err := h.DB.Find(&schedules).Error; err != nil {
			return nil, nil, nil, nil, err
		}
	}

	var payments []paymentModel.PaymentModel
	if wantPayments {
		if err := h.DB.Find(&payments).Error; err != nil {
			return nil, nil, nil, nil, err
		}
	}

	var fees []feeModel.StudentFeeModel
	if err := h.DB.Find(&fees).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	return students, schedules, payments, feeService.NewResolver(fees), nil
}

// GET /api/reports/dashboard
func (h *ReportController) Dashboard(c *fiber.Ctx) error {
	students, schedules, payments, resolver, err := h.load(true, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data laporan")
	}
	return helper.JsonOK(c, "OK", service.BuildDashboard(students, schedules, payments, resolver, time.Now()))
}

// GET /api/reports/students
func (h *ReportController) Students(c *fiber.Ctx) error {
	students, _, payments, resolver, err := h.load(false, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data laporan")
	}
	month, year := constants.CurrentMonthYear(time.Now())
	return helper.JsonOK(c, "OK", service.BuildStudentReport(students, payments, resolver, month, year))
}

// GET /api/reports/schedules
func (h *ReportController) Schedules(c *fiber.Ctx) error {
	students, schedules, _, _, err := h.load(true, false)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data laporan")
	}
	return helper.JsonOK(c, "OK", service.BuildScheduleReport(students, schedules))
}

// GET /api/reports/payments?year=2026
func (h *ReportController) Payments(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	if year < 2000 || year > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter year tidak valid")
	}

	students, _, payments, resolver, err := h.load(false, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data laporan")
	}
	return helper.JsonOK(c, "OK", service.BuildPaymentReport(students, payments, resolver, year, now))
}

// GET /api/reports/families?month=August&year=2026 (default bulan berjalan)
func (h *ReportController) Families(c *fiber.Ctx) error {
	curMonth, curYear := constants.CurrentMonthYear(time.Now())

	month := c.Query("month", curMonth)
	if !constants.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter month tidak valid")
	}
	year := c.QueryInt("year", curYear)
	if year < 2000 || year > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter year tidak valid")
	}

	students, _, payments, resolver, err := h.load(false, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data laporan")
	}
	return helper.JsonOK(c, "OK", service.BuildFamilyReport(students, payments, resolver, month, year))
}
