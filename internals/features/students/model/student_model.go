package model

// StudentModel adalah entity akar: schedule, payment, dan fee override
// semuanya ikut terhapus kalau siswa dihapus (cascade).
// JSON key mengikuti format file backup versi 1.0 (camelCase).
type StudentModel struct {
	StudentID         uint    `gorm:"column:student_id;primaryKey;autoIncrement" json:"id"`
	StudentName       string  `gorm:"column:student_name;type:text;not null" json:"name"`
	StudentPhone      string  `gorm:"column:student_phone;type:text;not null" json:"phone"`
	StudentEmail      *string `gorm:"column:student_email;type:text" json:"email,omitempty"`
	StudentGrade      *string `gorm:"column:student_grade;type:text" json:"grade,omitempty"`
	StudentSubject    string  `gorm:"column:student_subject;type:text;not null" json:"subject"`
	StudentMonthlyFee int     `gorm:"column:student_monthly_fee;not null" json:"monthlyFee"` // fee default, >= 0
	StudentStatus     string  `gorm:"column:student_status;type:text;not null;default:active" json:"status"`
	StudentFamilyName *string `gorm:"column:student_family_name;type:text" json:"familyName,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (s StudentModel) IsActive() bool { return s.StudentStatus == "active" }
