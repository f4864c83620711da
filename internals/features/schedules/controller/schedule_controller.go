package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/schedules/dto"
	"tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	helper "tutortrack_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

/* ===================== GET ===================== */

// GET /api/schedules — bisa difilter ?studentId=
func (h *ScheduleController) GetAll(c *fiber.Ctx) error {
	q := h.DB.Order("schedule_id ASC")
	if sid := c.QueryInt("studentId"); sid > 0 {
		q = q.Where("schedule_student_id = ?", sid)
	}

	var schedules []model.ScheduleModel
	if err := q.Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}
	return helper.JsonOK(c, "OK", schedules)
}

/* ===================== CREATE ===================== */

// POST /api/schedules
func (h *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Siswa harus ada sebelum jadwal dibuat
	var count int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	schedule, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Create(schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", schedule)
}

// POST /api/schedules/bulk — import banyak jadwal sekaligus.
// Error per baris dilaporkan "Row N: <pesan>"; baris valid tetap tersimpan.
func (h *ScheduleController) BulkCreate(c *fiber.Ctx) error {
	var reqs []dto.CreateScheduleRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload harus berupa array jadwal")
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Array jadwal kosong")
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
		if err := validate.Struct(req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: data tidak valid", i+1))
			continue
		}
		schedule, err := req.ToModel()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}
		if !known[req.StudentID] {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: siswa %d tidak ditemukan", i+1, req.StudentID))
			continue
		}
		if err := h.DB.Create(schedule).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: gagal menyimpan", i+1))
			continue
		}
		result.Created++
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d jadwal berhasil diimpor", result.Created), result)
}

/* ===================== DELETE ===================== */

// DELETE /api/schedules/:id
func (h *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var schedule model.ScheduleModel
	if err := h.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	if err := h.DB.Delete(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"id": schedule.ScheduleID})
}
