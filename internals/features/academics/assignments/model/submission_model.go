// file: internals/features/academics/assignments/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusLate      SubmissionStatus = "late"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusLate, SubmissionStatusGraded:
		return true
	default:
		return false
	}
}

// Satu submission per (assignment, student) — unique index gabungan.
type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`

	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;column:submission_assignment_id;uniqueIndex:uq_submission_assignment_student" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"type:uuid;not null;column:submission_student_id;uniqueIndex:uq_submission_assignment_student;index:idx_submission_student" json:"submission_student_id"`
	SubmissionGroupID      uuid.UUID `gorm:"type:uuid;not null;column:submission_group_id" json:"submission_group_id"`

	// Denormalisasi dari assignment (mempercepat rollup per subject)
	SubmissionSubjectID uuid.UUID `gorm:"type:uuid;not null;column:submission_subject_id" json:"submission_subject_id"`

	SubmissionStatus SubmissionStatus `gorm:"type:varchar(16);not null;default:'submitted';column:submission_status;index:idx_submission_status" json:"submission_status"`

	SubmissionMarks    *float64 `gorm:"type:numeric(8,2);column:submission_marks" json:"submission_marks,omitempty"`
	SubmissionFeedback *string  `gorm:"type:text;column:submission_feedback" json:"submission_feedback,omitempty"`

	SubmissionGradedBy *uuid.UUID `gorm:"type:uuid;column:submission_graded_by" json:"submission_graded_by,omitempty"`
	SubmissionGradedAt *time.Time `gorm:"type:timestamptz;column:submission_graded_at" json:"submission_graded_at,omitempty"`

	SubmissionSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_submitted_at" json:"submission_submitted_at"`

	SubmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_created_at;autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at;autoUpdateTime" json:"submission_updated_at"`
	SubmissionDeletedAt gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"submission_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
