package service

import (
	"time"

	"gorm.io/gorm"

	"tutortrack_backend/internals/features/backup/dto"
	paymentModel "tutortrack_backend/internals/features/payments/model"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
)

/* ===================== EXPORT ===================== */

// Export membaca seluruh dataset dalam satu transaksi read-only supaya
// snapshot konsisten antar tabel.
func Export(db *gorm.DB) (*dto.Snapshot, error) {
	snap := &dto.Snapshot{
		Version:     dto.SnapshotVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Students:    []studentModel.StudentModel{},
		Schedules:   []scheduleModel.ScheduleModel{},
		Payments:    []paymentModel.PaymentModel{},
		StudentFees: []feeModel.StudentFeeModel{},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("student_id ASC").Find(&snap.Students).Error; err != nil {
			return err
		}
		if err := tx.Order("schedule_id ASC").Find(&snap.Schedules).Error; err != nil {
			return err
		}
		if err := tx.Order("payment_id ASC").Find(&snap.Payments).Error; err != nil {
			return err
		}
		return tx.Order("student_fee_id ASC").Find(&snap.StudentFees).Error
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

/* ===================== RESTORE ===================== */

// Restore mengganti SELURUH dataset dengan isi snapshot dalam satu
// transaksi. ID lama di snapshot tidak dipakai ulang: siswa dapat ID baru
// dan seluruh referensi anak di-remap lewat peta ID lama → baru. Row anak
// yang menunjuk siswa di luar snapshot dilewati dan dihitung, bukan
// menggagalkan restore. Error storage apa pun membatalkan semuanya.
func Restore(db *gorm.DB, snap *dto.Snapshot) (*dto.RestoreResult, error) {
	result := &dto.RestoreResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Anak dulu baru induk supaya tidak melanggar FK
		purge := []string{
			"DELETE FROM student_fees",
			"DELETE FROM payments",
			"DELETE FROM schedules",
			"DELETE FROM students",
		}
		for _, q := range purge {
			if err := tx.Exec(q).Error; err != nil {
				return err
			}
		}

		idMap := make(map[uint]uint, len(snap.Students))
		for _, s := range snap.Students {
			oldID := s.StudentID
			s.StudentID = 0
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
			idMap[oldID] = s.StudentID
			result.Students++
		}

		for _, sc := range snap.Schedules {
			newID, ok := idMap[sc.ScheduleStudentID]
			if !ok {
				result.Skipped++
				continue
			}
			sc.ScheduleID = 0
			sc.ScheduleStudentID = newID
			if err := tx.Create(&sc).Error; err != nil {
				return err
			}
			result.Schedules++
		}

		for _, p := range snap.Payments {
			newID, ok := idMap[p.PaymentStudentID]
			if !ok {
				result.Skipped++
				continue
			}
			p.PaymentID = 0
			p.PaymentStudentID = newID
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			result.Payments++
		}

		// Key studentFees boleh absen di snapshot lama; hasilnya 0
		for _, f := range snap.StudentFees {
			newID, ok := idMap[f.StudentFeeStudentID]
			if !ok {
				result.Skipped++
				continue
			}
			f.StudentFeeID = 0
			f.StudentFeeStudentID = newID
			if err := tx.Create(&f).Error; err != nil {
				return err
			}
			result.StudentFees++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
