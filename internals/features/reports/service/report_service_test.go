package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutortrack_backend/internals/constants"
	paymentModel "tutortrack_backend/internals/features/payments/model"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
	feeService "tutortrack_backend/internals/features/studentfees/service"
	"tutortrack_backend/internals/helpers/dbtime"
)

func strPtr(s string) *string { return &s }

func mustTod(t *testing.T, hhmm string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(hhmm)
	require.NoError(t, err)
	return tod
}

func activeStudent(id uint, name string, fee int) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:         id,
		StudentName:       name,
		StudentPhone:      "555",
		StudentSubject:    "Mathematics",
		StudentMonthlyFee: fee,
		StudentStatus:     "active",
	}
}

/* ===================== DASHBOARD ===================== */

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	today := constants.TodayName(now)

	students := []studentModel.StudentModel{
		activeStudent(1, "Aarav", 2500),
		activeStudent(2, "Priya", 3000),
		{StudentID: 3, StudentName: "Vikram", StudentSubject: "Mathematics", StudentMonthlyFee: 3000, StudentStatus: "inactive"},
	}
	schedules := []scheduleModel.ScheduleModel{
		{ScheduleID: 1, ScheduleStudentID: 1, ScheduleDayOfWeek: today, ScheduleStartTime: mustTod(t, "17:00"), ScheduleEndTime: mustTod(t, "18:00"), ScheduleSubject: "Mathematics"},
		{ScheduleID: 2, ScheduleStudentID: 2, ScheduleDayOfWeek: today, ScheduleStartTime: mustTod(t, "09:00"), ScheduleEndTime: mustTod(t, "10:00"), ScheduleSubject: "Physics"},
	}
	payments := []paymentModel.PaymentModel{
		{PaymentID: 1, PaymentStudentID: 1, PaymentAmount: 2500, PaymentMonth: "August", PaymentYear: 2026},
		{PaymentID: 2, PaymentStudentID: 1, PaymentAmount: 100, PaymentMonth: "July", PaymentYear: 2026},
	}

	resp := BuildDashboard(students, schedules, payments, feeService.NewResolver(nil), now)

	assert.Equal(t, 3, resp.TotalStudents)
	assert.Equal(t, 2, resp.ActiveStudents)
	assert.Equal(t, 2500, resp.MonthCollected)
	assert.Equal(t, 5500, resp.MonthExpected, "siswa nonaktif tidak ikut expected")

	// jadwal hari ini diurutkan jam mulai
	require.Len(t, resp.TodayClasses, 2)
	assert.Equal(t, "09:00", resp.TodayClasses[0].StartTime)
	assert.Equal(t, "Priya", resp.TodayClasses[0].StudentName)

	// yang belum bayar bulan ini hanya Priya
	require.Len(t, resp.PendingStudents, 1)
	assert.Equal(t, uint(2), resp.PendingStudents[0].StudentID)
	assert.Equal(t, 3000, resp.PendingStudents[0].Amount)

	// ringkasan seminggu Senin duluan, 7 hari lengkap
	require.Len(t, resp.WeekOverview, 7)
	assert.Equal(t, "Monday", resp.WeekOverview[0].Day)
	assert.Equal(t, "Sunday", resp.WeekOverview[6].Day)
}

func TestBuildDashboardZeroFeeExcludedFromPending(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	students := []studentModel.StudentModel{activeStudent(1, "Rohan", 2000)}
	fees := []feeModel.StudentFeeModel{
		{StudentFeeStudentID: 1, StudentFeeMonth: "August", StudentFeeYear: 2026, StudentFeeAmount: 0},
	}

	resp := BuildDashboard(students, nil, nil, feeService.NewResolver(fees), now)

	assert.Equal(t, 0, resp.MonthExpected)
	assert.Empty(t, resp.PendingStudents, "fee efektif 0 berarti tidak ditagih")
}

/* ===================== STUDENT REPORT ===================== */

func TestBuildStudentReport(t *testing.T) {
	students := []studentModel.StudentModel{
		activeStudent(1, "Aarav", 2500),
		activeStudent(2, "Priya", 3000),
		activeStudent(3, "Rohan", 2000),
		{StudentID: 4, StudentName: "Vikram", StudentSubject: "Mathematics", StudentMonthlyFee: 3000, StudentStatus: "inactive"},
	}
	students[1].StudentSubject = "Physics"
	students[2].StudentGrade = strPtr("8th")
	fees := []feeModel.StudentFeeModel{
		{StudentFeeStudentID: 3, StudentFeeMonth: "August", StudentFeeYear: 2026, StudentFeeAmount: 0},
	}
	payments := []paymentModel.PaymentModel{
		{PaymentStudentID: 1, PaymentAmount: 2500, PaymentMonth: "August", PaymentYear: 2026},
	}

	resp := BuildStudentReport(students, payments, feeService.NewResolver(fees), "August", 2026)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 3, resp.Active)
	assert.Equal(t, 1, resp.Inactive)

	// rata-rata & expected hanya dari siswa aktif ber-fee (Aarav, Priya)
	assert.Equal(t, 5500, resp.ExpectedRevenue)
	assert.Equal(t, 2750, resp.AverageFee)

	// subject count desc; Mathematics (3) di atas Physics (1)
	require.NotEmpty(t, resp.BySubject)
	assert.Equal(t, "Mathematics", resp.BySubject[0].Name)
	assert.Equal(t, 3, resp.BySubject[0].Count)

	// status per siswa
	statusByName := map[string]string{}
	for _, s := range resp.Students {
		statusByName[s.Name] = s.PayStatus
	}
	assert.Equal(t, "Paid", statusByName["Aarav"])
	assert.Equal(t, "Pending", statusByName["Priya"])
	assert.Equal(t, "No Fee", statusByName["Rohan"])
	assert.Equal(t, "N/A", statusByName["Vikram"])

	// aktif duluan, nonaktif terakhir
	assert.Equal(t, "Vikram", resp.Students[len(resp.Students)-1].Name)
}

/* ===================== SCHEDULE REPORT ===================== */

func TestBuildScheduleReport(t *testing.T) {
	students := []studentModel.StudentModel{
		activeStudent(1, "Aarav", 2500),
		activeStudent(2, "Priya", 3000),
	}
	schedules := []scheduleModel.ScheduleModel{
		{ScheduleStudentID: 1, ScheduleDayOfWeek: "Monday", ScheduleStartTime: mustTod(t, "16:00"), ScheduleSubject: "Mathematics"},
		{ScheduleStudentID: 1, ScheduleDayOfWeek: "Wednesday", ScheduleStartTime: mustTod(t, "10:00"), ScheduleSubject: "Mathematics"},
		{ScheduleStudentID: 2, ScheduleDayOfWeek: "Wednesday", ScheduleStartTime: mustTod(t, "19:00"), ScheduleSubject: "Physics"},
	}

	resp := BuildScheduleReport(students, schedules)

	assert.Equal(t, 3, resp.WeeklyTotal)
	assert.Equal(t, 2, resp.TeachingDays)
	assert.Equal(t, "Wednesday", resp.BusiestDay)

	// urutan tetap mulai Minggu, hari kosong ikut dengan 0
	require.Len(t, resp.ByDay, 7)
	assert.Equal(t, "Sunday", resp.ByDay[0].Name)
	assert.Equal(t, 0, resp.ByDay[0].Count)

	assert.Equal(t, 1, resp.TimeBuckets.Morning)
	assert.Equal(t, 1, resp.TimeBuckets.Afternoon)
	assert.Equal(t, 1, resp.TimeBuckets.Evening)

	require.Len(t, resp.PerStudent, 2)
	assert.Equal(t, "Aarav", resp.PerStudent[0].Name)
	assert.Equal(t, 2, resp.PerStudent[0].Classes)
	assert.Equal(t, []string{"Monday", "Wednesday"}, resp.PerStudent[0].Days)
}

func TestBuildScheduleReportBusiestDayFirstMaxWins(t *testing.T) {
	schedules := []scheduleModel.ScheduleModel{
		{ScheduleStudentID: 1, ScheduleDayOfWeek: "Friday", ScheduleStartTime: mustTod(t, "08:00")},
		{ScheduleStudentID: 1, ScheduleDayOfWeek: "Monday", ScheduleStartTime: mustTod(t, "08:00")},
	}

	resp := BuildScheduleReport(nil, schedules)
	// seri 1-1; Monday lebih dulu pada urutan mulai Minggu
	assert.Equal(t, "Monday", resp.BusiestDay)
}

func TestBuildScheduleReportEmpty(t *testing.T) {
	resp := BuildScheduleReport(nil, nil)
	assert.Equal(t, 0, resp.WeeklyTotal)
	assert.Equal(t, "", resp.BusiestDay)
	assert.Equal(t, 0, resp.TeachingDays)
}

/* ===================== PAYMENT REPORT ===================== */

func TestBuildPaymentReport(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	students := []studentModel.StudentModel{activeStudent(1, "Aarav", 1000)}
	payments := []paymentModel.PaymentModel{
		{PaymentID: 1, PaymentStudentID: 1, PaymentAmount: 1000, PaymentMonth: "January", PaymentYear: 2026, PaymentPaidDate: dbtime.DateOf(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)), PaymentMethod: "cash"},
		{PaymentID: 2, PaymentStudentID: 1, PaymentAmount: 1000, PaymentMonth: "March", PaymentYear: 2026, PaymentPaidDate: dbtime.DateOf(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)), PaymentMethod: "upi"},
		{PaymentID: 3, PaymentStudentID: 1, PaymentAmount: 500, PaymentMonth: "March", PaymentYear: 2026, PaymentPaidDate: dbtime.DateOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)), PaymentMethod: "upi"},
		// tahun lain, tidak ikut
		{PaymentID: 4, PaymentStudentID: 1, PaymentAmount: 999, PaymentMonth: "March", PaymentYear: 2025, PaymentPaidDate: dbtime.DateOf(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)), PaymentMethod: "cash"},
	}

	resp := BuildPaymentReport(students, payments, feeService.NewResolver(nil), 2026, now)

	require.Len(t, resp.Monthly, 12)
	assert.Equal(t, "January", resp.Monthly[0].Month)
	assert.Equal(t, 1000, resp.Monthly[0].Collected)
	assert.Equal(t, 1000, resp.Monthly[0].Expected)
	assert.Equal(t, 1500, resp.Monthly[2].Collected)

	assert.Equal(t, 2500, resp.TotalCollected)
	assert.Equal(t, 12000, resp.TotalExpected)
	assert.Equal(t, 21, resp.CollectionRate, "round(100*2500/12000)")

	// histogram method: upi 2x di atas cash 1x
	require.NotEmpty(t, resp.ByMethodCount)
	assert.Equal(t, "upi", resp.ByMethodCount[0].Name)
	assert.Equal(t, 2, resp.ByMethodCount[0].Count)

	// riwayat: bulan terbaru dulu, dalam bulan tanggal terbaru dulu
	require.Len(t, resp.History, 3)
	assert.Equal(t, uint(3), resp.History[0].PaymentID)
	assert.Equal(t, uint(2), resp.History[1].PaymentID)
	assert.Equal(t, uint(1), resp.History[2].PaymentID)

	// Agustus 2026 belum ada pembayaran → Aarav pending
	assert.Equal(t, 0, resp.CurrentMonth.Paid)
	assert.Equal(t, 1, resp.CurrentMonth.Pending)
}

func TestCollectionRateZeroExpected(t *testing.T) {
	assert.Equal(t, 0, CollectionRate(0, 0))
	assert.Equal(t, 0, CollectionRate(500, 0), "tidak boleh bagi nol")
	assert.Equal(t, 50, CollectionRate(1, 2))
	assert.Equal(t, 33, CollectionRate(1, 3))
}

/* ===================== FAMILY REPORT ===================== */

func TestBuildFamilyReport(t *testing.T) {
	khan1 := activeStudent(1, "Ahmed Khan", 300)
	khan1.StudentFamilyName = strPtr("Khan")
	khan2 := activeStudent(2, "Sara Khan", 400)
	khan2.StudentFamilyName = strPtr("Khan")
	solo := activeStudent(3, "Priya", 3000)

	students := []studentModel.StudentModel{khan1, khan2, solo}
	payments := []paymentModel.PaymentModel{
		{PaymentStudentID: 1, PaymentAmount: 300, PaymentMonth: "August", PaymentYear: 2026},
	}

	resp := BuildFamilyReport(students, payments, feeService.NewResolver(nil), "August", 2026)

	require.Len(t, resp.Families, 2)
	khan := resp.Families[0]
	assert.Equal(t, "Khan", khan.FamilyName)
	assert.Equal(t, 2, khan.Members)
	assert.Equal(t, 700, khan.Expected)
	assert.Equal(t, 300, khan.Paid)
	assert.False(t, khan.AllPaid, "Sara belum bayar")
	assert.Equal(t, 400, khan.Balance)
	assert.Equal(t, "Due", khan.Status)

	unassigned := resp.Families[1]
	assert.Equal(t, "Unassigned", unassigned.FamilyName)
	assert.Equal(t, 1, unassigned.Members)

	assert.Equal(t, 3700, resp.TotalExpected)
	assert.Equal(t, 300, resp.TotalPaid)
}

func TestBuildFamilyReportAllPaidAndOverpaid(t *testing.T) {
	khan1 := activeStudent(1, "Ahmed Khan", 300)
	khan1.StudentFamilyName = strPtr("Khan")
	khan2 := activeStudent(2, "Sara Khan", 400)
	khan2.StudentFamilyName = strPtr("Khan")

	payments := []paymentModel.PaymentModel{
		{PaymentStudentID: 1, PaymentAmount: 300, PaymentMonth: "August", PaymentYear: 2026},
		{PaymentStudentID: 2, PaymentAmount: 500, PaymentMonth: "August", PaymentYear: 2026},
	}

	resp := BuildFamilyReport([]studentModel.StudentModel{khan1, khan2}, payments, feeService.NewResolver(nil), "August", 2026)

	require.Len(t, resp.Families, 1)
	khan := resp.Families[0]
	assert.True(t, khan.AllPaid)
	assert.Equal(t, -100, khan.Balance)
	assert.Equal(t, "Overpaid", khan.Status)
}

func TestBuildFamilyReportZeroFeeMemberExcludedFromAllPaid(t *testing.T) {
	khan1 := activeStudent(1, "Ahmed Khan", 300)
	khan1.StudentFamilyName = strPtr("Khan")
	khan2 := activeStudent(2, "Sara Khan", 400)
	khan2.StudentFamilyName = strPtr("Khan")

	fees := []feeModel.StudentFeeModel{
		{StudentFeeStudentID: 2, StudentFeeMonth: "August", StudentFeeYear: 2026, StudentFeeAmount: 0},
	}
	payments := []paymentModel.PaymentModel{
		{PaymentStudentID: 1, PaymentAmount: 300, PaymentMonth: "August", PaymentYear: 2026},
	}

	resp := BuildFamilyReport([]studentModel.StudentModel{khan1, khan2}, payments, feeService.NewResolver(fees), "August", 2026)

	require.Len(t, resp.Families, 1)
	khan := resp.Families[0]
	assert.Equal(t, 300, khan.Expected, "anggota bebas fee tidak menambah expected")
	assert.True(t, khan.AllPaid, "anggota bebas fee tidak menahan status lunas")
	assert.Equal(t, "Settled", khan.Status)
}

func TestBuildFamilyReportNoFeePayingMembersNotAllPaid(t *testing.T) {
	khan := activeStudent(1, "Ahmed Khan", 0)
	khan.StudentFamilyName = strPtr("Khan")

	resp := BuildFamilyReport([]studentModel.StudentModel{khan}, nil, feeService.NewResolver(nil), "August", 2026)

	require.Len(t, resp.Families, 1)
	assert.False(t, resp.Families[0].AllPaid, "keluarga tanpa tagihan tidak otomatis lunas")
}

func TestBuildFamilyReportZeroFeeFamilyWithPaymentNotAllPaid(t *testing.T) {
	khan := activeStudent(1, "Ahmed Khan", 500)
	khan.StudentFamilyName = strPtr("Khan")

	// fee dibebaskan bulan ini, tapi tetap ada pembayaran tercatat
	fees := []feeModel.StudentFeeModel{
		{StudentFeeStudentID: 1, StudentFeeMonth: "August", StudentFeeYear: 2026, StudentFeeAmount: 0},
	}
	payments := []paymentModel.PaymentModel{
		{PaymentStudentID: 1, PaymentAmount: 500, PaymentMonth: "August", PaymentYear: 2026},
	}

	resp := BuildFamilyReport([]studentModel.StudentModel{khan}, payments, feeService.NewResolver(fees), "August", 2026)

	require.Len(t, resp.Families, 1)
	fam := resp.Families[0]
	assert.Equal(t, 0, fam.Expected)
	assert.Equal(t, 500, fam.Paid)
	assert.False(t, fam.AllPaid, "tanpa anggota ber-fee tidak ada yang bisa disebut lunas")
	assert.Equal(t, "Overpaid", fam.Status)
}
