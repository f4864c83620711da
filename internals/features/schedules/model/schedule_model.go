package model

import (
	"tutortrack_backend/internals/helpers/dbtime"

	studentModel "tutortrack_backend/internals/features/students/model"
)

type ScheduleModel struct {
	ScheduleID        uint        `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"id"`
	ScheduleStudentID uint        `gorm:"column:schedule_student_id;not null;index" json:"studentId"`
	ScheduleDayOfWeek string      `gorm:"column:schedule_day_of_week;type:text;not null" json:"dayOfWeek"` // Monday..Sunday
	ScheduleStartTime dbtime.Tod  `gorm:"column:schedule_start_time;not null" json:"startTime"`
	ScheduleEndTime   dbtime.Tod  `gorm:"column:schedule_end_time;not null" json:"endTime"`
	ScheduleSubject   string      `gorm:"column:schedule_subject;type:text;not null" json:"subject"`

	Student *studentModel.StudentModel `gorm:"foreignKey:ScheduleStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ScheduleModel) TableName() string { return "schedules" }
