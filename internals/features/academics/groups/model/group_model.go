// file: internals/features/academics/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_id" json:"group_id"`

	GroupName         string `gorm:"type:varchar(80);not null;column:group_name" json:"group_name"`
	GroupSemester     int    `gorm:"type:smallint;not null;column:group_semester;index:idx_group_semester" json:"group_semester"` // DB: CHECK 1..8
	GroupAcademicYear string `gorm:"type:varchar(16);not null;column:group_academic_year" json:"group_academic_year"`

	GroupCapacity int `gorm:"type:smallint;not null;column:group_capacity" json:"group_capacity"` // DB: CHECK > 0

	// Counter turunan dari membership list; dijaga konsisten lewat
	// conditional update (tidak pernah melebihi capacity).
	GroupStudentCount int `gorm:"type:smallint;not null;default:0;column:group_student_count" json:"group_student_count"`

	GroupIsActive bool `gorm:"not null;default:true;column:group_is_active" json:"group_is_active"`

	GroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:group_updated_at;autoUpdateTime" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "class_groups" }

// GroupStudentModel: membership list. Satu student maksimal satu group
// (uniqueIndex di student_id).
type GroupStudentModel struct {
	GroupStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_student_id" json:"group_student_id"`

	GroupStudentGroupID   uuid.UUID `gorm:"type:uuid;not null;column:group_student_group_id;index:idx_group_student_group" json:"group_student_group_id"`
	GroupStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:group_student_student_id;uniqueIndex:uq_group_student_student" json:"group_student_student_id"`

	GroupStudentAssignedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:group_student_assigned_at" json:"group_student_assigned_at"`
}

func (GroupStudentModel) TableName() string { return "class_group_students" }

// GroupSubjectTeacherModel: penugasan guru per subject dalam satu group.
type GroupSubjectTeacherModel struct {
	GroupSubjectTeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_subject_teacher_id" json:"group_subject_teacher_id"`

	GroupSubjectTeacherGroupID   uuid.UUID `gorm:"type:uuid;not null;column:group_subject_teacher_group_id;uniqueIndex:uq_group_subject" json:"group_subject_teacher_group_id"`
	GroupSubjectTeacherSubjectID uuid.UUID `gorm:"type:uuid;not null;column:group_subject_teacher_subject_id;uniqueIndex:uq_group_subject" json:"group_subject_teacher_subject_id"`
	GroupSubjectTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;column:group_subject_teacher_teacher_id" json:"group_subject_teacher_teacher_id"`

	GroupSubjectTeacherCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:group_subject_teacher_created_at;autoCreateTime" json:"group_subject_teacher_created_at"`
}

func (GroupSubjectTeacherModel) TableName() string { return "class_group_subject_teachers" }
