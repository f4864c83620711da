package dto

import (
	"tutortrack_backend/internals/constants"
	m "tutortrack_backend/internals/features/students/model"
)

/* ================== REQUESTS ================== */

// Create — juga dipakai per baris pada bulk import
type CreateStudentRequest struct {
	Name       string  `json:"name"       validate:"required,min=1,max=200"`
	Phone      string  `json:"phone"      validate:"required,min=3,max=30"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Grade      *string `json:"grade"      validate:"omitempty,max=30"`
	Subject    string  `json:"subject"    validate:"required,min=1,max=100"`
	MonthlyFee int     `json:"monthlyFee" validate:"gte=0"`
	Status     string  `json:"status"     validate:"omitempty,oneof=active inactive"`
	FamilyName *string `json:"familyName" validate:"omitempty,max=100"`
}

func (r CreateStudentRequest) ToModel() *m.StudentModel {
	status := r.Status
	if status == "" {
		status = constants.StudentActive
	}
	return &m.StudentModel{
		StudentName:       r.Name,
		StudentPhone:      r.Phone,
		StudentEmail:      r.Email,
		StudentGrade:      r.Grade,
		StudentSubject:    r.Subject,
		StudentMonthlyFee: r.MonthlyFee,
		StudentStatus:     status,
		StudentFamilyName: r.FamilyName,
	}
}

// Update (partial)
type UpdateStudentRequest struct {
	Name       *string `json:"name"       validate:"omitempty,min=1,max=200"`
	Phone      *string `json:"phone"      validate:"omitempty,min=3,max=30"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Grade      *string `json:"grade"      validate:"omitempty,max=30"`
	Subject    *string `json:"subject"    validate:"omitempty,min=1,max=100"`
	MonthlyFee *int    `json:"monthlyFee" validate:"omitempty,gte=0"`
	Status     *string `json:"status"     validate:"omitempty,oneof=active inactive"`
	FamilyName *string `json:"familyName" validate:"omitempty,max=100"`
}

// Terapkan perubahan ke model existing
func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) {
	if r.Name != nil {
		mo.StudentName = *r.Name
	}
	if r.Phone != nil {
		mo.StudentPhone = *r.Phone
	}
	if r.Email != nil {
		mo.StudentEmail = r.Email
	}
	if r.Grade != nil {
		mo.StudentGrade = r.Grade
	}
	if r.Subject != nil {
		mo.StudentSubject = *r.Subject
	}
	if r.MonthlyFee != nil {
		mo.StudentMonthlyFee = *r.MonthlyFee
	}
	if r.Status != nil {
		mo.StudentStatus = *r.Status
	}
	if r.FamilyName != nil {
		mo.StudentFamilyName = r.FamilyName
	}
}

/* ================== RESPONSES ================== */

// BulkResult: hasil bulk import baris-per-baris.
// Error per baris tidak menggagalkan baris lain.
type BulkResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"` // "Row N: <pesan>"
}
