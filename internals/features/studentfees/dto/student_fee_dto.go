package dto

import (
	m "tutortrack_backend/internals/features/studentfees/model"
)

/* ================== REQUESTS ================== */

// Upsert by (studentId, month, year): kalau sudah ada amount-nya diganti,
// kalau belum ada dibuat baru. Amount 0 = bebaskan fee bulan itu.
type SetStudentFeeRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	Month     string `json:"month"     validate:"required,oneof=January February March April May June July August September October November December"`
	Year      int    `json:"year"      validate:"required,gte=2000,lte=2100"`
	Amount    int    `json:"amount"    validate:"gte=0"`
}

func (r SetStudentFeeRequest) ToModel() *m.StudentFeeModel {
	return &m.StudentFeeModel{
		StudentFeeStudentID: r.StudentID,
		StudentFeeMonth:     r.Month,
		StudentFeeYear:      r.Year,
		StudentFeeAmount:    r.Amount,
	}
}
