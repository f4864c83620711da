package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	"tutortrack_backend/internals/constants"
	paymentModel "tutortrack_backend/internals/features/payments/model"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	studentModel "tutortrack_backend/internals/features/students/model"
	"tutortrack_backend/internals/helpers/dbtime"
)

func strPtr(s string) *string { return &s }

// RunAllSeeds mengisi dataset demo saat tabel siswa masih kosong.
// Dipanggil dari main hanya kalau SEED_ON_BOOT=true.
func RunAllSeeds(db *gorm.DB) {
	var count int64
	if err := db.Model(&studentModel.StudentModel{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Seed dibatalkan, gagal cek tabel students: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Seed dilewati, tabel students sudah terisi")
		return
	}

	students := []studentModel.StudentModel{
		{StudentName: "Aarav Sharma", StudentPhone: "9876543210", StudentEmail: strPtr("aarav@example.com"), StudentGrade: strPtr("10th"), StudentSubject: "Mathematics", StudentMonthlyFee: 2500, StudentStatus: "active"},
		{StudentName: "Priya Patel", StudentPhone: "9876543211", StudentEmail: strPtr("priya@example.com"), StudentGrade: strPtr("12th"), StudentSubject: "Physics", StudentMonthlyFee: 3000, StudentStatus: "active"},
		{StudentName: "Rohan Gupta", StudentPhone: "9876543212", StudentGrade: strPtr("8th"), StudentSubject: "Science", StudentMonthlyFee: 2000, StudentStatus: "active"},
		{StudentName: "Ananya Iyer", StudentPhone: "9876543213", StudentEmail: strPtr("ananya@example.com"), StudentGrade: strPtr("9th"), StudentSubject: "Chemistry", StudentMonthlyFee: 2500, StudentStatus: "active"},
		{StudentName: "Vikram Singh", StudentPhone: "9876543214", StudentGrade: strPtr("11th"), StudentSubject: "Mathematics", StudentMonthlyFee: 3000, StudentStatus: "inactive"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&students).Error; err != nil {
			return err
		}

		mustTod := func(hhmm string) dbtime.Tod {
			t, err := dbtime.Parse(hhmm)
			if err != nil {
				panic(err)
			}
			return t
		}
		schedules := []scheduleModel.ScheduleModel{
			{ScheduleStudentID: students[0].StudentID, ScheduleDayOfWeek: "Monday", ScheduleStartTime: mustTod("16:00"), ScheduleEndTime: mustTod("17:00"), ScheduleSubject: "Mathematics"},
			{ScheduleStudentID: students[0].StudentID, ScheduleDayOfWeek: "Wednesday", ScheduleStartTime: mustTod("16:00"), ScheduleEndTime: mustTod("17:00"), ScheduleSubject: "Mathematics"},
			{ScheduleStudentID: students[1].StudentID, ScheduleDayOfWeek: "Monday", ScheduleStartTime: mustTod("17:30"), ScheduleEndTime: mustTod("18:30"), ScheduleSubject: "Physics"},
			{ScheduleStudentID: students[1].StudentID, ScheduleDayOfWeek: "Thursday", ScheduleStartTime: mustTod("17:30"), ScheduleEndTime: mustTod("18:30"), ScheduleSubject: "Physics"},
			{ScheduleStudentID: students[2].StudentID, ScheduleDayOfWeek: "Tuesday", ScheduleStartTime: mustTod("15:00"), ScheduleEndTime: mustTod("16:00"), ScheduleSubject: "Science"},
			{ScheduleStudentID: students[2].StudentID, ScheduleDayOfWeek: "Friday", ScheduleStartTime: mustTod("15:00"), ScheduleEndTime: mustTod("16:00"), ScheduleSubject: "Science"},
			{ScheduleStudentID: students[3].StudentID, ScheduleDayOfWeek: "Wednesday", ScheduleStartTime: mustTod("17:30"), ScheduleEndTime: mustTod("18:30"), ScheduleSubject: "Chemistry"},
			{ScheduleStudentID: students[3].StudentID, ScheduleDayOfWeek: "Saturday", ScheduleStartTime: mustTod("10:00"), ScheduleEndTime: mustTod("11:00"), ScheduleSubject: "Chemistry"},
		}
		if err := tx.Create(&schedules).Error; err != nil {
			return err
		}

		now := time.Now()
		month, year := constants.CurrentMonthYear(now)
		today := dbtime.DateOf(now)
		payments := []paymentModel.PaymentModel{
			{PaymentStudentID: students[0].StudentID, PaymentAmount: 2500, PaymentMonth: month, PaymentYear: year, PaymentPaidDate: today, PaymentMethod: "upi", PaymentNotes: strPtr("Paid on time")},
			{PaymentStudentID: students[1].StudentID, PaymentAmount: 3000, PaymentMonth: month, PaymentYear: year, PaymentPaidDate: today, PaymentMethod: "cash"},
		}
		return tx.Create(&payments).Error
	})
	if err != nil {
		log.Printf("❌ Seed gagal: %v", err)
		return
	}

	log.Println("✅ Seed selesai: 5 siswa, 8 jadwal, 2 pembayaran")
}
