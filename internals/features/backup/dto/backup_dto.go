package dto

import (
	paymentModel "tutortrack_backend/internals/features/payments/model"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
)

const SnapshotVersion = "1.0"

// Snapshot: format file backup "at rest". Key camelCase mengikuti format
// file yang sudah beredar — jangan diubah tanpa menaikkan version.
type Snapshot struct {
	Version     string                       `json:"version"`
	ExportedAt  string                       `json:"exportedAt"` // RFC3339
	Students    []studentModel.StudentModel  `json:"students"`
	Schedules   []scheduleModel.ScheduleModel `json:"schedules"`
	Payments    []paymentModel.PaymentModel  `json:"payments"`
	StudentFees []feeModel.StudentFeeModel   `json:"studentFees,omitempty"`
}

// RestoreResult: jumlah row yang berhasil masuk + yang dilewati karena
// induknya (siswa) tidak ada di snapshot.
type RestoreResult struct {
	Students    int `json:"students"`
	Schedules   int `json:"schedules"`
	Payments    int `json:"payments"`
	StudentFees int `json:"studentFees"`
	Skipped     int `json:"skipped"`
}
