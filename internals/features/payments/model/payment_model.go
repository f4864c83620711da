package model

import (
	"tutortrack_backend/internals/helpers/dbtime"

	studentModel "tutortrack_backend/internals/features/students/model"
)

// PaymentModel: satu kuitansi pembayaran. Boleh ada lebih dari satu
// untuk (siswa, bulan, tahun) yang sama — "sudah bayar" = minimal satu baris,
// nominal terbayar = jumlah seluruh baris periode itu.
type PaymentModel struct {
	PaymentID        uint            `gorm:"column:payment_id;primaryKey;autoIncrement" json:"id"`
	PaymentStudentID uint            `gorm:"column:payment_student_id;not null;index" json:"studentId"`
	PaymentAmount    int             `gorm:"column:payment_amount;not null" json:"amount"`
	PaymentMonth     string          `gorm:"column:payment_month;type:text;not null" json:"month"` // nama bulan penuh
	PaymentYear      int             `gorm:"column:payment_year;not null" json:"year"`
	PaymentPaidDate  dbtime.DateOnly `gorm:"column:payment_paid_date;not null" json:"paidDate"`
	PaymentMethod    string          `gorm:"column:payment_method;type:text;not null;default:cash" json:"method"`
	PaymentNotes     *string         `gorm:"column:payment_notes;type:text" json:"notes,omitempty"`

	Student *studentModel.StudentModel `gorm:"foreignKey:PaymentStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }
