// file: internals/features/academics/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/grading"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentTitle string `gorm:"type:varchar(120);not null;column:assignment_title" json:"assignment_title"`

	// "main" = evaluasi module-wide (gate promosi), "weekly" = tugas
	// rutin per subject. DB: CHECK ('weekly','main')
	AssignmentType grading.AssignmentKind `gorm:"type:varchar(8);not null;column:assignment_type;index:idx_assignment_type" json:"assignment_type"`

	AssignmentSemester  int       `gorm:"type:smallint;not null;column:assignment_semester;index:idx_assignment_semester" json:"assignment_semester"`
	AssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;column:assignment_subject_id" json:"assignment_subject_id"`
	AssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;column:assignment_teacher_id" json:"assignment_teacher_id"`

	AssignmentMaxMarks float64    `gorm:"type:numeric(8,2);not null;column:assignment_max_marks" json:"assignment_max_marks"` // DB: CHECK > 0
	AssignmentDeadline *time.Time `gorm:"type:timestamptz;column:assignment_deadline" json:"assignment_deadline,omitempty"`

	// Target cohort (uuid group dalam bentuk text[])
	AssignmentGroupIDs pq.StringArray `gorm:"type:text[];column:assignment_group_ids" json:"assignment_group_ids"`

	AssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }
