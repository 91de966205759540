// file: internals/features/academics/attendance/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// AttendanceSessionModel: satu pertemuan per (tanggal, subject, group).
// Hanya session yang is_submitted yang dihitung aggregator.
type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	AttendanceSessionGroupID   uuid.UUID  `gorm:"type:uuid;not null;column:attendance_session_group_id;index:idx_attendance_session_group" json:"attendance_session_group_id"`
	AttendanceSessionSubjectID uuid.UUID  `gorm:"type:uuid;not null;column:attendance_session_subject_id;index:idx_attendance_session_subject" json:"attendance_session_subject_id"`
	AttendanceSessionTeacherID *uuid.UUID `gorm:"type:uuid;column:attendance_session_teacher_id" json:"attendance_session_teacher_id,omitempty"`

	AttendanceSessionSemester int       `gorm:"type:smallint;not null;column:attendance_session_semester;index:idx_attendance_session_semester" json:"attendance_session_semester"`
	AttendanceSessionDate     time.Time `gorm:"type:date;not null;column:attendance_session_date" json:"attendance_session_date"`

	AttendanceSessionIsSubmitted bool `gorm:"not null;default:false;column:attendance_session_is_submitted" json:"attendance_session_is_submitted"`

	AttendanceSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_session_created_at;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_session_updated_at;autoUpdateTime" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`

	AttendanceSessionEntries []AttendanceEntryModel `gorm:"foreignKey:AttendanceEntrySessionID;references:AttendanceSessionID" json:"attendance_session_entries,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

// AttendanceEntryModel: status satu student dalam satu session.
type AttendanceEntryModel struct {
	AttendanceEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_entry_id" json:"attendance_entry_id"`

	AttendanceEntrySessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_entry_session_id;uniqueIndex:uq_attendance_entry_session_student" json:"attendance_entry_session_id"`
	AttendanceEntryStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_entry_student_id;uniqueIndex:uq_attendance_entry_session_student;index:idx_attendance_entry_student" json:"attendance_entry_student_id"`

	AttendanceEntryStatus AttendanceStatus `gorm:"type:varchar(10);not null;default:'present';column:attendance_entry_status" json:"attendance_entry_status"`

	AttendanceEntryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_entry_created_at;autoCreateTime" json:"attendance_entry_created_at"`
}

func (AttendanceEntryModel) TableName() string { return "attendance_entries" }
