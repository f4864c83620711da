package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/students/dto"
	"tutortrack_backend/internals/features/students/model"
	helper "tutortrack_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ===================== GET ===================== */

// GET /api/students — seluruh siswa, terbaru duluan
func (h *StudentController) GetAll(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := h.DB.Order("student_id DESC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "OK", students)
}

// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student model.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "OK", student)
}

/* ===================== CREATE ===================== */

// POST /api/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := req.ToModel()
	if err := h.DB.Create(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", student)
}

// POST /api/students/bulk — import banyak siswa sekaligus.
// Baris yang gagal dicatat sebagai "Row N: <pesan>" tanpa menggagalkan baris lain.
func (h *StudentController) BulkCreate(c *fiber.Ctx) error {
	var reqs []dto.CreateStudentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload harus berupa array siswa")
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Array siswa kosong")
	}

	result := dto.BulkResult{Errors: []string{}}
	for i, req := range reqs {
		if err := validate.Struct(req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, firstViolation(err)))
			continue
		}
		student := req.ToModel()
		if err := h.DB.Create(student).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: gagal menyimpan", i+1))
			continue
		}
		result.Created++
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d siswa berhasil diimpor", result.Created), result)
}

// Ringkas satu pesan pelanggaran untuk error per baris bulk.
func firstViolation(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("field %s wajib diisi", fe.Field())
		case "email":
			return "email tidak valid"
		case "oneof":
			return fmt.Sprintf("field %s di luar pilihan yang diizinkan", fe.Field())
		case "gte":
			return fmt.Sprintf("field %s tidak boleh negatif", fe.Field())
		default:
			return fmt.Sprintf("field %s tidak valid", fe.Field())
		}
	}
	return "data tidak valid"
}

/* ===================== UPDATE ===================== */

// PATCH /api/students/:id — partial update
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	req.ApplyTo(&student)
	if err := h.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", student)
}

/* ===================== DELETE ===================== */

// DELETE /api/students/:id — hapus siswa beserta jadwal, pembayaran, dan
// override fee miliknya (satu transaksi). Cascade juga ada di level FK,
// tapi delete eksplisit menjaga perilaku sama di DB tanpa FK constraint.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student model.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}

	steps := []string{
		"DELETE FROM student_fees WHERE student_fee_student_id = ?",
		"DELETE FROM payments WHERE payment_student_id = ?",
		"DELETE FROM schedules WHERE schedule_student_id = ?",
	}
	for _, q := range steps {
		if err := tx.Exec(q, id).Error; err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data terkait siswa")
		}
	}
	if err := tx.Delete(&student).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"id": student.StudentID})
}
