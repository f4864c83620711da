package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutortrack_backend/internals/features/backup/dto"
	"tutortrack_backend/internals/features/backup/service"
	helper "tutortrack_backend/internals/helpers"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

/* ===================== EXPORT ===================== */

// GET /api/backup — unduh snapshot seluruh dataset
func (h *BackupController) Export(c *fiber.Ctx) error {
	snap, err := service.Export(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat backup")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tutortrack-backup.json"`)
	return c.Status(fiber.StatusOK).JSON(snap)
}

/* ===================== RESTORE ===================== */

// POST /api/restore — ganti seluruh dataset dengan isi snapshot.
// Validasi bentuk dokumen dilakukan SEBELUM ada langkah destruktif;
// begitu transaksi jalan, error apa pun mengembalikan data lama utuh.
func (h *BackupController) Restore(c *fiber.Ctx) error {
	var snap dto.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File backup tidak bisa dibaca")
	}

	if snap.Version == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "File backup tidak valid: version kosong")
	}
	if snap.Students == nil || snap.Schedules == nil || snap.Payments == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File backup tidak valid: students/schedules/payments wajib ada")
	}

	result, err := service.Restore(h.DB, &snap)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Restore gagal, data lama tidak berubah")
	}
	return helper.JsonOK(c, "Restore selesai", result)
}
