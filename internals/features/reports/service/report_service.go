package service

import (
	"math"
	"sort"
	"time"

	"tutortrack_backend/internals/constants"
	paymentModel "tutortrack_backend/internals/features/payments/model"
	"tutortrack_backend/internals/features/reports/dto"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeService "tutortrack_backend/internals/features/studentfees/service"
	helper "tutortrack_backend/internals/helpers"
)

// Seluruh builder di package ini murni: input slice yang sudah dimuat
// controller, output DTO siap kirim. Tidak ada akses DB di sini.

/* ===================== DASHBOARD ===================== */

func BuildDashboard(
	students []studentModel.StudentModel,
	schedules []scheduleModel.ScheduleModel,
	payments []paymentModel.PaymentModel,
	resolver *feeService.Resolver,
	now time.Time,
) dto.DashboardResponse {
	month, year := constants.CurrentMonthYear(now)
	today := constants.TodayName(now)

	nameByID := studentNameIndex(students)
	paidThisMonth := paidStudentSet(payments, month, year)

	resp := dto.DashboardResponse{
		TodayName:       today,
		TodayClasses:    []dto.TodayClass{},
		PendingStudents: []dto.PendingStudent{},
	}

	resp.TotalStudents = len(students)
	for _, s := range students {
		if !s.IsActive() {
			continue
		}
		resp.ActiveStudents++

		fee, _ := resolver.EffectiveFee(s, month, year)
		if fee <= 0 {
			continue
		}
		resp.MonthExpected += fee
		if !paidThisMonth[s.StudentID] {
			resp.PendingStudents = append(resp.PendingStudents, dto.PendingStudent{
				StudentID: s.StudentID,
				Name:      s.StudentName,
				Phone:     s.StudentPhone,
				Amount:    fee,
			})
		}
	}
	sort.Slice(resp.PendingStudents, func(i, j int) bool {
		return resp.PendingStudents[i].Name < resp.PendingStudents[j].Name
	})

	for _, p := range payments {
		if p.PaymentMonth == month && p.PaymentYear == year {
			resp.MonthCollected += p.PaymentAmount
		}
	}
	resp.MonthCollectedFmt = moneyView(resp.MonthCollected)
	resp.MonthExpectedFmt = moneyView(resp.MonthExpected)

	for _, sc := range schedules {
		if sc.ScheduleDayOfWeek != today {
			continue
		}
		resp.TodayClasses = append(resp.TodayClasses, dto.TodayClass{
			ScheduleID:  sc.ScheduleID,
			StudentID:   sc.ScheduleStudentID,
			StudentName: nameByID[sc.ScheduleStudentID],
			Subject:     sc.ScheduleSubject,
			StartTime:   sc.ScheduleStartTime.String(),
			EndTime:     sc.ScheduleEndTime.String(),
		})
	}
	sort.Slice(resp.TodayClasses, func(i, j int) bool {
		return resp.TodayClasses[i].StartTime < resp.TodayClasses[j].StartTime
	})

	// Ringkasan seminggu, Senin duluan
	perDay := map[string]int{}
	for _, sc := range schedules {
		perDay[sc.ScheduleDayOfWeek]++
	}
	for _, day := range constants.DaysMondayFirst {
		resp.WeekOverview = append(resp.WeekOverview, dto.DayScheduleOverview{Day: day, Classes: perDay[day]})
	}

	return resp
}

func moneyView(amount int) dto.MoneyView {
	return dto.MoneyView{
		QAR: helper.FormatQAR(amount),
		INR: helper.FormatINREquivalent(amount),
	}
}

/* ===================== STUDENT REPORT ===================== */

func BuildStudentReport(
	students []studentModel.StudentModel,
	payments []paymentModel.PaymentModel,
	resolver *feeService.Resolver,
	month string,
	year int,
) dto.StudentReportResponse {
	paid := paidStudentSet(payments, month, year)

	resp := dto.StudentReportResponse{Students: []dto.StudentStatus{}}
	resp.Total = len(students)

	bySubject := map[string]int{}
	byGrade := map[string]int{}
	feeSum, feeCount := 0, 0

	for _, s := range students {
		if s.IsActive() {
			resp.Active++
		} else {
			resp.Inactive++
		}
		bySubject[s.StudentSubject]++
		grade := "N/A"
		if s.StudentGrade != nil && *s.StudentGrade != "" {
			grade = *s.StudentGrade
		}
		byGrade[grade]++

		fee, _ := resolver.EffectiveFee(s, month, year)
		if s.IsActive() && fee > 0 {
			feeSum += fee
			feeCount++
		}

		resp.Students = append(resp.Students, dto.StudentStatus{
			StudentID:    s.StudentID,
			Name:         s.StudentName,
			Subject:      s.StudentSubject,
			Status:       s.StudentStatus,
			EffectiveFee: fee,
			PayStatus:    payStatus(s, fee, paid[s.StudentID]),
		})
	}

	resp.BySubject = sortedCountsDesc(bySubject)
	resp.ByGrade = sortedCountsByName(byGrade)
	resp.ExpectedRevenue = feeSum
	if feeCount > 0 {
		resp.AverageFee = int(math.Round(float64(feeSum) / float64(feeCount)))
	}

	// Aktif duluan, lalu alfabetis
	sort.Slice(resp.Students, func(i, j int) bool {
		a, b := resp.Students[i], resp.Students[j]
		if a.Status != b.Status {
			return a.Status == constants.StudentActive
		}
		return a.Name < b.Name
	})

	return resp
}

// Status pembayaran bulan berjalan per siswa:
// Paid (ada pembayaran), Pending (aktif + fee > 0 + belum bayar),
// No Fee (aktif + fee 0), N/A (nonaktif).
func payStatus(s studentModel.StudentModel, fee int, hasPaid bool) string {
	if !s.IsActive() {
		return "N/A"
	}
	if hasPaid {
		return "Paid"
	}
	if fee == 0 {
		return "No Fee"
	}
	return "Pending"
}

/* ===================== SCHEDULE REPORT ===================== */

func BuildScheduleReport(
	students []studentModel.StudentModel,
	schedules []scheduleModel.ScheduleModel,
) dto.ScheduleReportResponse {
	resp := dto.ScheduleReportResponse{PerStudent: []dto.StudentLoad{}}
	resp.WeeklyTotal = len(schedules)

	perDay := map[string]int{}
	bySubject := map[string]int{}
	for _, sc := range schedules {
		perDay[sc.ScheduleDayOfWeek]++
		bySubject[sc.ScheduleSubject]++

		switch hour := sc.ScheduleStartTime.Hour(); {
		case hour < 12:
			resp.TimeBuckets.Morning++
		case hour < 17:
			resp.TimeBuckets.Afternoon++
		default:
			resp.TimeBuckets.Evening++
		}
	}

	// Urutan tetap mulai Minggu; hari kosong tetap muncul dengan 0
	busiest, busiestCount := "", 0
	for _, day := range constants.DaysSundayFirst {
		count := perDay[day]
		resp.ByDay = append(resp.ByDay, dto.NameCount{Name: day, Count: count})
		if count > 0 {
			resp.TeachingDays++
		}
		if count > busiestCount {
			busiest, busiestCount = day, count
		}
	}
	resp.BusiestDay = busiest
	resp.BySubject = sortedCountsDesc(bySubject)

	// Beban per siswa; hanya siswa yang punya jadwal
	type load struct {
		classes int
		days    map[string]bool
	}
	loads := map[uint]*load{}
	for _, sc := range schedules {
		l, ok := loads[sc.ScheduleStudentID]
		if !ok {
			l = &load{days: map[string]bool{}}
			loads[sc.ScheduleStudentID] = l
		}
		l.classes++
		l.days[sc.ScheduleDayOfWeek] = true
	}
	for _, s := range students {
		l, ok := loads[s.StudentID]
		if !ok {
			continue
		}
		days := make([]string, 0, len(l.days))
		for _, day := range constants.DaysMondayFirst {
			if l.days[day] {
				days = append(days, day)
			}
		}
		resp.PerStudent = append(resp.PerStudent, dto.StudentLoad{
			StudentID: s.StudentID,
			Name:      s.StudentName,
			Classes:   l.classes,
			Days:      days,
		})
	}
	sort.Slice(resp.PerStudent, func(i, j int) bool {
		return resp.PerStudent[i].Name < resp.PerStudent[j].Name
	})

	return resp
}

/* ===================== PAYMENT REPORT ===================== */

func BuildPaymentReport(
	students []studentModel.StudentModel,
	payments []paymentModel.PaymentModel,
	resolver *feeService.Resolver,
	year int,
	now time.Time,
) dto.PaymentReportResponse {
	resp := dto.PaymentReportResponse{Year: year, History: []dto.HistoryEntry{}}
	nameByID := studentNameIndex(students)

	collectedByMonth := map[string]int{}
	methodCount := map[string]int{}
	methodAmount := map[string]int{}
	var yearPayments []paymentModel.PaymentModel
	for _, p := range payments {
		if p.PaymentYear != year {
			continue
		}
		yearPayments = append(yearPayments, p)
		collectedByMonth[p.PaymentMonth] += p.PaymentAmount
		methodCount[p.PaymentMethod]++
		methodAmount[p.PaymentMethod] += p.PaymentAmount
	}

	for _, month := range constants.Months {
		expected := 0
		for _, s := range students {
			if !s.IsActive() {
				continue
			}
			if fee, _ := resolver.EffectiveFee(s, month, year); fee > 0 {
				expected += fee
			}
		}
		collected := collectedByMonth[month]
		resp.Monthly = append(resp.Monthly, dto.MonthlySeries{
			Month:     month,
			Collected: collected,
			Expected:  expected,
		})
		resp.TotalCollected += collected
		resp.TotalExpected += expected
	}
	resp.CollectionRate = CollectionRate(resp.TotalCollected, resp.TotalExpected)

	resp.ByMethodCount = sortedCountsDesc(methodCount)
	resp.ByMethodAmount = sortedCountsDesc(methodAmount)

	// Status bulan berjalan (kalender sekarang, bukan tahun terpilih)
	curMonth, curYear := constants.CurrentMonthYear(now)
	paid := paidStudentSet(payments, curMonth, curYear)
	for _, s := range students {
		if !s.IsActive() {
			continue
		}
		fee, _ := resolver.EffectiveFee(s, curMonth, curYear)
		switch payStatus(s, fee, paid[s.StudentID]) {
		case "Paid":
			resp.CurrentMonth.Paid++
		case "Pending":
			resp.CurrentMonth.Pending++
		case "No Fee":
			resp.CurrentMonth.NoFee++
		}
	}

	// Riwayat: bulan terbaru duluan, lalu tanggal bayar terbaru
	sort.Slice(yearPayments, func(i, j int) bool {
		mi := constants.MonthIndex(yearPayments[i].PaymentMonth)
		mj := constants.MonthIndex(yearPayments[j].PaymentMonth)
		if mi != mj {
			return mi > mj
		}
		return yearPayments[i].PaymentPaidDate.Time.After(yearPayments[j].PaymentPaidDate.Time)
	})
	for _, p := range yearPayments {
		resp.History = append(resp.History, dto.HistoryEntry{
			PaymentID:   p.PaymentID,
			StudentID:   p.PaymentStudentID,
			StudentName: nameByID[p.PaymentStudentID],
			Amount:      p.PaymentAmount,
			Month:       p.PaymentMonth,
			Year:        p.PaymentYear,
			PaidDate:    p.PaymentPaidDate.String(),
			Method:      p.PaymentMethod,
		})
	}

	return resp
}

// CollectionRate = round(100 * collected / expected); 0 saat expected 0.
func CollectionRate(collected, expected int) int {
	if expected == 0 {
		return 0
	}
	return int(math.Round(100 * float64(collected) / float64(expected)))
}

/* ===================== FAMILY REPORT ===================== */

const unassignedFamily = "Unassigned"

func BuildFamilyReport(
	students []studentModel.StudentModel,
	payments []paymentModel.PaymentModel,
	resolver *feeService.Resolver,
	month string,
	year int,
) dto.FamilyReportResponse {
	resp := dto.FamilyReportResponse{Month: month, Year: year, Families: []dto.FamilyStatus{}}

	paidAmounts := map[uint]int{}
	for _, p := range payments {
		if p.PaymentMonth == month && p.PaymentYear == year {
			paidAmounts[p.PaymentStudentID] += p.PaymentAmount
		}
	}

	groups := map[string][]studentModel.StudentModel{}
	for _, s := range students {
		name := unassignedFamily
		if s.StudentFamilyName != nil && *s.StudentFamilyName != "" {
			name = *s.StudentFamilyName
		}
		groups[name] = append(groups[name], s)
	}

	for name, members := range groups {
		fam := dto.FamilyStatus{FamilyName: name, Members: len(members), AllPaid: true, MemberRows: []dto.FamilyMember{}}
		feePaying := 0
		for _, s := range members {
			fee, _ := resolver.EffectiveFee(s, month, year)
			paidAmount := paidAmounts[s.StudentID]

			if s.IsActive() {
				fam.Active++
				if fee > 0 {
					feePaying++
					fam.Expected += fee
					if paidAmount == 0 {
						fam.AllPaid = false
					}
				}
			}
			fam.Paid += paidAmount

			fam.MemberRows = append(fam.MemberRows, dto.FamilyMember{
				StudentID:    s.StudentID,
				Name:         s.StudentName,
				Status:       s.StudentStatus,
				EffectiveFee: fee,
				Paid:         paidAmount,
			})
		}
		// Keluarga tanpa anggota aktif ber-fee tidak dihitung lunas,
		// ada pembayaran tercatat atau tidak
		if feePaying == 0 {
			fam.AllPaid = false
		}
		fam.Balance = fam.Expected - fam.Paid
		switch {
		case fam.Balance < 0:
			fam.Status = "Overpaid"
		case fam.Balance == 0:
			fam.Status = "Settled"
		default:
			fam.Status = "Due"
		}
		sort.Slice(fam.MemberRows, func(i, j int) bool {
			return fam.MemberRows[i].Name < fam.MemberRows[j].Name
		})

		resp.Families = append(resp.Families, fam)
		resp.TotalExpected += fam.Expected
		resp.TotalPaid += fam.Paid
	}

	sort.Slice(resp.Families, func(i, j int) bool {
		return resp.Families[i].FamilyName < resp.Families[j].FamilyName
	})

	return resp
}

/* ===================== SHARED ===================== */

func studentNameIndex(students []studentModel.StudentModel) map[uint]string {
	idx := make(map[uint]string, len(students))
	for _, s := range students {
		idx[s.StudentID] = s.StudentName
	}
	return idx
}

// Siswa yang punya minimal satu pembayaran di (bulan, tahun) tersebut.
func paidStudentSet(payments []paymentModel.PaymentModel, month string, year int) map[uint]bool {
	set := map[uint]bool{}
	for _, p := range payments {
		if p.PaymentMonth == month && p.PaymentYear == year {
			set[p.PaymentStudentID] = true
		}
	}
	return set
}

// Desc by count, nama asc untuk seri
func sortedCountsDesc(in map[string]int) []dto.NameCount {
	out := make([]dto.NameCount, 0, len(in))
	for name, count := range in {
		out = append(out, dto.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedCountsByName(in map[string]int) []dto.NameCount {
	out := make([]dto.NameCount, 0, len(in))
	for name, count := range in {
		out = append(out, dto.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
