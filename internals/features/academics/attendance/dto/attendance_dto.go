// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/attendance/model"
)

/* =========================
   Requests
========================= */

type AttendanceEntryInput struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
}

type CreateAttendanceSessionRequest struct {
	GroupID   uuid.UUID              `json:"group_id" validate:"required"`
	SubjectID uuid.UUID              `json:"subject_id" validate:"required"`
	TeacherID *uuid.UUID             `json:"teacher_id,omitempty"`
	Semester  int                    `json:"semester" validate:"required,min=1,max=8"`
	Date      time.Time              `json:"date" validate:"required"`
	Entries   []AttendanceEntryInput `json:"entries" validate:"required,min=1,dive"`
}

func (r CreateAttendanceSessionRequest) ToModel() model.AttendanceSessionModel {
	session := model.AttendanceSessionModel{
		AttendanceSessionGroupID:   r.GroupID,
		AttendanceSessionSubjectID: r.SubjectID,
		AttendanceSessionTeacherID: r.TeacherID,
		AttendanceSessionSemester:  r.Semester,
		AttendanceSessionDate:      r.Date,
	}
	for _, e := range r.Entries {
		session.AttendanceSessionEntries = append(session.AttendanceSessionEntries, model.AttendanceEntryModel{
			AttendanceEntryStudentID: e.StudentID,
			AttendanceEntryStatus:    model.AttendanceStatus(e.Status),
		})
	}
	return session
}

/* =========================
   Responses
========================= */

// AttendanceSummary: rekap kehadiran untuk promotion engine + display.
// Label banding hanya informatif; yang dipakai engine cuma Percentage.
type AttendanceSummary struct {
	TotalClasses int     `json:"total_classes"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Late         int     `json:"late"`
	Excused      int     `json:"excused"`
	Percentage   float64 `json:"percentage"`
	Label        string  `json:"label"`
}
