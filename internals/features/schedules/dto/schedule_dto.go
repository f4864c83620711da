package dto

import (
	"fmt"

	m "tutortrack_backend/internals/features/schedules/model"
	"tutortrack_backend/internals/helpers/dbtime"
)

/* ================== REQUESTS ================== */

type CreateScheduleRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	DayOfWeek string `json:"dayOfWeek" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" validate:"required"` // "HH:MM"
	EndTime   string `json:"endTime"   validate:"required"` // "HH:MM"
	Subject   string `json:"subject"   validate:"required,min=1,max=100"`
}

// ToModel memvalidasi format jam sekaligus konversi ke model.
func (r CreateScheduleRequest) ToModel() (*m.ScheduleModel, error) {
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime tidak valid: %q", r.StartTime)
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime tidak valid: %q", r.EndTime)
	}
	return &m.ScheduleModel{
		ScheduleStudentID: r.StudentID,
		ScheduleDayOfWeek: r.DayOfWeek,
		ScheduleStartTime: start,
		ScheduleEndTime:   end,
		ScheduleSubject:   r.Subject,
	}, nil
}

/* ================== RESPONSES ================== */

type BulkResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"` // "Row N: <pesan>"
}
