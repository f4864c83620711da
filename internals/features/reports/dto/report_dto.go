package dto

/* ===== DASHBOARD ===== */

type DashboardResponse struct {
	TotalStudents    int                   `json:"total_students"`
	ActiveStudents   int                   `json:"active_students"`
	TodayName        string                `json:"today"`
	TodayClasses     []TodayClass          `json:"today_classes"`
	MonthCollected    int                   `json:"month_collected"`
	MonthExpected     int                   `json:"month_expected"`
	MonthCollectedFmt MoneyView             `json:"month_collected_fmt"`
	MonthExpectedFmt  MoneyView             `json:"month_expected_fmt"`
	PendingStudents   []PendingStudent      `json:"pending_students"`
	WeekOverview      []DayScheduleOverview `json:"week_overview"` // Senin duluan
}

type MoneyView struct {
	QAR string `json:"qar"`
	INR string `json:"inr_equivalent"`
}

type TodayClass struct {
	ScheduleID  uint   `json:"schedule_id"`
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type PendingStudent struct {
	StudentID uint   `json:"student_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Amount    int    `json:"amount"` // fee efektif bulan berjalan
}

type DayScheduleOverview struct {
	Day     string `json:"day"`
	Classes int    `json:"classes"`
}

/* ===== STUDENT REPORT ===== */

type StudentReportResponse struct {
	Total           int              `json:"total"`
	Active          int              `json:"active"`
	Inactive        int              `json:"inactive"`
	BySubject       []NameCount      `json:"by_subject"` // count desc, lalu nama
	ByGrade         []NameCount      `json:"by_grade"`   // nama asc
	AverageFee      int              `json:"average_fee"`
	ExpectedRevenue int              `json:"expected_revenue"`
	Students        []StudentStatus  `json:"students"` // aktif duluan, lalu nama
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StudentStatus struct {
	StudentID    uint   `json:"student_id"`
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`        // active | inactive
	EffectiveFee int    `json:"effective_fee"` // bulan berjalan
	PayStatus    string `json:"pay_status"`    // Paid | Pending | No Fee | N/A
}

/* ===== SCHEDULE REPORT ===== */

type ScheduleReportResponse struct {
	WeeklyTotal  int              `json:"weekly_total"`
	ByDay        []NameCount      `json:"by_day"` // Minggu duluan
	BusiestDay   string           `json:"busiest_day"`
	TeachingDays int              `json:"teaching_days"`
	BySubject    []NameCount      `json:"by_subject"` // count desc
	TimeBuckets  TimeBucketCounts `json:"time_buckets"`
	PerStudent   []StudentLoad    `json:"per_student"`
}

type TimeBucketCounts struct {
	Morning   int `json:"morning"`   // [00:00, 12:00)
	Afternoon int `json:"afternoon"` // [12:00, 17:00)
	Evening   int `json:"evening"`   // [17:00, 24:00)
}

type StudentLoad struct {
	StudentID uint     `json:"student_id"`
	Name      string   `json:"name"`
	Classes   int      `json:"classes"`
	Days      []string `json:"days"` // distinct, Senin duluan
}

/* ===== PAYMENT REPORT ===== */

type PaymentReportResponse struct {
	Year           int             `json:"year"`
	Monthly        []MonthlySeries `json:"monthly"` // 12 bulan kalender
	TotalCollected int             `json:"total_collected"`
	TotalExpected  int             `json:"total_expected"`
	CollectionRate int             `json:"collection_rate"` // persen, bulat
	ByMethodCount  []NameCount     `json:"by_method_count"`
	ByMethodAmount []NameCount     `json:"by_method_amount"`
	CurrentMonth   MonthStatus     `json:"current_month"`
	History        []HistoryEntry  `json:"history"`
}

type MonthlySeries struct {
	Month     string `json:"month"`
	Collected int    `json:"collected"`
	Expected  int    `json:"expected"`
}

type MonthStatus struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	NoFee   int `json:"no_fee"`
}

type HistoryEntry struct {
	PaymentID   uint   `json:"payment_id"`
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	Amount      int    `json:"amount"`
	Month       string `json:"month"`
	Year        int    `json:"year"`
	PaidDate    string `json:"paid_date"`
	Method      string `json:"method"`
}

/* ===== FAMILY REPORT ===== */

type FamilyReportResponse struct {
	Month         string         `json:"month"`
	Year          int            `json:"year"`
	Families      []FamilyStatus `json:"families"` // nama asc; "" = belum dikelompokkan
	TotalExpected int            `json:"total_expected"`
	TotalPaid     int            `json:"total_paid"`
}

type FamilyStatus struct {
	FamilyName string         `json:"family_name"`
	Members    int            `json:"members"`
	Active     int            `json:"active"`
	Expected   int            `json:"expected"`
	Paid       int            `json:"paid"`
	AllPaid    bool           `json:"all_paid"`
	Balance    int            `json:"balance"`
	Status     string         `json:"status"` // Settled | Due | Overpaid
	MemberRows []FamilyMember `json:"member_rows"`
}

type FamilyMember struct {
	StudentID    uint   `json:"student_id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	EffectiveFee int    `json:"effective_fee"`
	Paid         int    `json:"paid"`
}
