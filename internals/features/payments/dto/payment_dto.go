package dto

import (
	"errors"

	"tutortrack_backend/internals/constants"
	m "tutortrack_backend/internals/features/payments/model"
	"tutortrack_backend/internals/helpers/dbtime"
)

/* ================== REQUESTS ================== */

type CreatePaymentRequest struct {
	StudentID uint    `json:"studentId" validate:"required"`
	Amount    int     `json:"amount"    validate:"required"`
	Month     string  `json:"month"     validate:"required,oneof=January February March April May June July August September October November December"`
	Year      int     `json:"year"      validate:"required,gte=2000,lte=2100"`
	PaidDate  string  `json:"paidDate"  validate:"required"` // "2006-01-02"
	Method    string  `json:"method"    validate:"omitempty,oneof=cash upi bank_transfer cheque fawran"`
	Notes     *string `json:"notes"     validate:"omitempty,max=300"`
}

var ErrInvalidAmount = errors.New("Invalid amount")

func (r CreatePaymentRequest) ToModel() (*m.PaymentModel, error) {
	if r.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	paid, err := dbtime.ParseDate(r.PaidDate)
	if err != nil {
		return nil, errors.New("Invalid paidDate")
	}
	method := r.Method
	if method == "" {
		method = constants.MethodCash
	}
	return &m.PaymentModel{
		PaymentStudentID: r.StudentID,
		PaymentAmount:    r.Amount,
		PaymentMonth:     r.Month,
		PaymentYear:      r.Year,
		PaymentPaidDate:  paid,
		PaymentMethod:    method,
		PaymentNotes:     r.Notes,
	}, nil
}

/* ================== RESPONSES ================== */

type BulkResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"` // "Row N: <pesan>"
}
