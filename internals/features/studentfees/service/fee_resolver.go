package service

import (
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
)

// Kunci periode override
type periodKey struct {
	StudentID uint
	Month     string
	Year      int
}

// Resolver menjawab "berapa fee efektif siswa X di bulan/tahun Y" dari
// slice yang sudah dimuat sekali, tanpa query tambahan per siswa.
//
// Aturan: override (kalau ada) menang atas fee default siswa, termasuk
// override 0 yang artinya bulan itu sengaja dibebaskan.
type Resolver struct {
	overrides map[periodKey]int
}

func NewResolver(fees []feeModel.StudentFeeModel) *Resolver {
	overrides := make(map[periodKey]int, len(fees))
	for _, f := range fees {
		overrides[periodKey{f.StudentFeeStudentID, f.StudentFeeMonth, f.StudentFeeYear}] = f.StudentFeeAmount
	}
	return &Resolver{overrides: overrides}
}

// EffectiveFee mengembalikan fee efektif dan apakah nilainya dari override.
func (r *Resolver) EffectiveFee(s studentModel.StudentModel, month string, year int) (amount int, overridden bool) {
	if v, ok := r.overrides[periodKey{s.StudentID, month, year}]; ok {
		return v, true
	}
	return s.StudentMonthlyFee, false
}
