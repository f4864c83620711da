package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/payments/dto"
	"tutortrack_backend/internals/features/payments/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	helper "tutortrack_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

/* ===================== GET ===================== */

// GET /api/payments — filter opsional ?studentId= &month= &year=
func (h *PaymentController) GetAll(c *fiber.Ctx) error {
	q := h.DB.Order("payment_id DESC")
	if sid := c.QueryInt("studentId"); sid > 0 {
		q = q.Where("payment_student_id = ?", sid)
	}
	if month := c.Query("month"); month != "" {
		q = q.Where("payment_month = ?", month)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("payment_year = ?", year)
	}

	var payments []model.PaymentModel
	if err := q.Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	return helper.JsonOK(c, "OK", payments)
}

/* ===================== CREATE ===================== */

// POST /api/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	payment, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	if err := h.DB.Create(payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}
	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", payment)
}

// POST /api/payments/bulk — import riwayat pembayaran.
// Error per baris dilaporkan "Row N: <pesan>"; baris valid tetap tersimpan.
func (h *PaymentController) BulkCreate(c *fiber.Ctx) error {
	var reqs []dto.CreatePaymentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload harus berupa array pembayaran")
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Array pembayaran kosong")
	}

	// Cukup sekali ambil seluruh ID siswa untuk verifikasi referensi
	var ids []uint
	if err := h.DB.Model(&studentModel.StudentModel{}).Pluck("student_id", &ids).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	known := make(map[uint]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	result := dto.BulkResult{Errors: []string{}}
	for i, req := range reqs {
		payment, err := req.ToModel()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}
		if err := validate.Struct(req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: data tidak valid", i+1))
			continue
		}
		if !known[req.StudentID] {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: siswa %d tidak ditemukan", i+1, req.StudentID))
			continue
		}
		if err := h.DB.Create(payment).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: gagal menyimpan", i+1))
			continue
		}
		result.Created++
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d pembayaran berhasil diimpor", result.Created), result)
}

/* ===================== DELETE ===================== */

// DELETE /api/payments/:id — koreksi pencatatan
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var payment model.PaymentModel
	if err := h.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	if err := h.DB.Delete(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pembayaran")
	}
	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"id": payment.PaymentID})
}
