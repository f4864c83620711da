package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	studentModel "tutortrack_backend/internals/features/students/model"
	"tutortrack_backend/internals/features/studentfees/dto"
	"tutortrack_backend/internals/features/studentfees/model"
	helper "tutortrack_backend/internals/helpers"
)

type StudentFeeController struct {
	DB *gorm.DB
}

func NewStudentFeeController(db *gorm.DB) *StudentFeeController {
	return &StudentFeeController{DB: db}
}

var validate = validator.New()

/* ===================== GET ===================== */

// GET /api/student-fees — filter opsional ?studentId= &month= &year=
func (h *StudentFeeController) GetAll(c *fiber.Ctx) error {
	q := h.DB.Order("student_fee_id ASC")
	if sid := c.QueryInt("studentId"); sid > 0 {
		q = q.Where("student_fee_student_id = ?", sid)
	}
	if month := c.Query("month"); month != "" {
		q = q.Where("student_fee_month = ?", month)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("student_fee_year = ?", year)
	}

	var fees []model.StudentFeeModel
	if err := q.Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}
	return helper.JsonOK(c, "OK", fees)
}

/* ===================== UPSERT ===================== */

// POST /api/student-fees — set fee per (siswa, bulan, tahun).
// Kalau row periode itu sudah ada, amount-nya diganti (bukan error).
func (h *StudentFeeController) Set(c *fiber.Ctx) error {
	var req dto.SetStudentFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
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

	var fee model.StudentFeeModel
	err := h.DB.First(&fee,
		"student_fee_student_id = ? AND student_fee_month = ? AND student_fee_year = ?",
		req.StudentID, req.Month, req.Year,
	).Error

	switch {
	case err == nil:
		fee.StudentFeeAmount = req.Amount
		if err := h.DB.Save(&fee).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui fee")
		}
		return helper.JsonUpdated(c, "Fee berhasil diperbarui", fee)

	case errors.Is(err, gorm.ErrRecordNotFound):
		row := req.ToModel()
		if err := h.DB.Create(row).Error; err != nil {
			// Balapan dengan request lain untuk periode yang sama:
			// unique index uq_student_fee_period menang, fallback ke update.
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				if err := h.DB.Model(&model.StudentFeeModel{}).
					Where("student_fee_student_id = ? AND student_fee_month = ? AND student_fee_year = ?",
						req.StudentID, req.Month, req.Year).
					Update("student_fee_amount", req.Amount).Error; err != nil {
					return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui fee")
				}
				return helper.JsonUpdated(c, "Fee berhasil diperbarui", req)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan fee")
		}
		return helper.JsonCreated(c, "Fee berhasil disimpan", row)

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}
}

/* ===================== DELETE ===================== */

// DELETE /api/student-fees/:id — hapus override, siswa kembali ke fee default
func (h *StudentFeeController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID fee tidak valid")
	}

	var fee model.StudentFeeModel
	if err := h.DB.First(&fee, "student_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}

	if err := h.DB.Delete(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus fee")
	}
	return helper.JsonDeleted(c, "Fee berhasil dihapus", fiber.Map{"id": fee.StudentFeeID})
}
