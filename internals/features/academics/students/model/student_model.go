// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusFailed    StudentStatus = "failed"
	StudentStatusPromoted  StudentStatus = "promoted"
	StudentStatusGraduated StudentStatus = "graduated"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusFailed, StudentStatusPromoted, StudentStatusGraduated:
		return true
	default:
		return false
	}
}

// Batas semester program (1..8). Semester 8 lulus → graduated.
const (
	MinSemester = 1
	MaxSemester = 8
)

type StudentModel struct {
	StudentID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID *uuid.UUID `gorm:"type:uuid;column:student_user_id;index:idx_student_user" json:"student_user_id,omitempty"`

	StudentName string `gorm:"type:varchar(80);not null;column:student_name" json:"student_name"`
	StudentCode string `gorm:"type:varchar(50);not null;uniqueIndex:uq_student_code;column:student_code" json:"student_code"`

	StudentCurrentSemester int           `gorm:"type:smallint;not null;default:1;column:student_current_semester" json:"student_current_semester"` // DB: CHECK 1..8
	StudentStatus          StudentStatus `gorm:"type:varchar(16);not null;default:'active';column:student_status;index:idx_student_status" json:"student_status"`

	// Cohort saat ini (nil = belum punya group; di-reset saat promosi)
	StudentGroupID *uuid.UUID `gorm:"type:uuid;column:student_group_id;index:idx_student_group" json:"student_group_id,omitempty"`

	// Urutan enrollment dipakai round-robin assignment
	StudentEnrolledAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_enrolled_at" json:"student_enrolled_at"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
