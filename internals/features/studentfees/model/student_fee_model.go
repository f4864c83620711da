package model

import (
	studentModel "tutortrack_backend/internals/features/students/model"
)

// StudentFeeModel: override fee per (siswa, bulan, tahun).
// Satu-satunya entity dengan invariant unik; amount 0 = sengaja "tanpa fee"
// (beda makna dengan "tidak ada override").
type StudentFeeModel struct {
	StudentFeeID        uint   `gorm:"column:student_fee_id;primaryKey;autoIncrement" json:"id"`
	StudentFeeStudentID uint   `gorm:"column:student_fee_student_id;not null;uniqueIndex:uq_student_fee_period" json:"studentId"`
	StudentFeeMonth     string `gorm:"column:student_fee_month;type:text;not null;uniqueIndex:uq_student_fee_period" json:"month"`
	StudentFeeYear      int    `gorm:"column:student_fee_year;not null;uniqueIndex:uq_student_fee_period" json:"year"`
	StudentFeeAmount    int    `gorm:"column:student_fee_amount;not null" json:"amount"` // >= 0, 0 = bebas fee bulan itu

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentFeeStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentFeeModel) TableName() string { return "student_fees" }
