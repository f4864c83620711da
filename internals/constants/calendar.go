package constants

import "time"

// Nama bulan penuh, dipakai sebagai kunci periode pembayaran & fee override.
// Case-sensitive, harus sama persis dengan yang tersimpan di DB.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Urutan hari untuk laporan jadwal (ikut kalender mulai Minggu).
var DaysSundayFirst = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Urutan hari mulai Senin, dipakai dashboard ("hari ini" index 0=Monday..6=Sunday).
var DaysMondayFirst = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MonthIndex mengembalikan posisi bulan (0..11), -1 kalau bukan nama bulan valid.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

// DayIndexSundayFirst mengembalikan posisi hari pada urutan Minggu-pertama, -1 kalau invalid.
func DayIndexSundayFirst(name string) int {
	for i, d := range DaysSundayFirst {
		if d == name {
			return i
		}
	}
	return -1
}

// IsValidDay cek nama hari (Monday..Sunday).
func IsValidDay(name string) bool {
	return DayIndexSundayFirst(name) >= 0
}

// IsValidMonth cek nama bulan penuh.
func IsValidMonth(name string) bool {
	return MonthIndex(name) >= 0
}

// TodayName: nama hari "hari ini" memakai urutan Senin-pertama
// (weekday Go: Sunday=0 → dipetakan ke posisi 6).
func TodayName(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		return DaysMondayFirst[6]
	}
	return DaysMondayFirst[wd-1]
}

// CurrentMonthYear: nama bulan penuh + tahun dari sebuah titik waktu.
func CurrentMonthYear(t time.Time) (string, int) {
	return Months[int(t.Month())-1], t.Year()
}
