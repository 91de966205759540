// file: internals/features/academics/groups/dto/group_dto.go
package dto

import (
	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/groups/model"
)

/* =========================
   Requests
========================= */

type CreateGroupRequest struct {
	GroupName         string `json:"group_name" validate:"required,max=80"`
	GroupSemester     int    `json:"group_semester" validate:"required,min=1,max=8"`
	GroupAcademicYear string `json:"group_academic_year" validate:"required,max=16"`
	GroupCapacity     int    `json:"group_capacity" validate:"required,min=1"`
}

func (r CreateGroupRequest) ToModel() model.GroupModel {
	return model.GroupModel{
		GroupName:         r.GroupName,
		GroupSemester:     r.GroupSemester,
		GroupAcademicYear: r.GroupAcademicYear,
		GroupCapacity:     r.GroupCapacity,
		GroupIsActive:     true,
	}
}

type AssignStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
}

type AddSubjectTeacherRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

/* =========================
   Responses
========================= */

type GroupMembershipSummary struct {
	GroupID           uuid.UUID   `json:"group_id"`
	GroupName         string      `json:"group_name"`
	GroupSemester     int         `json:"group_semester"`
	GroupCapacity     int         `json:"group_capacity"`
	GroupStudentCount int         `json:"group_student_count"`
	MemberIDs         []uuid.UUID `json:"member_ids"`
}

type AssignmentDetail struct {
	StudentID uuid.UUID  `json:"student_id"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	Status    string     `json:"status"` // assigned | skipped
	Reason    string     `json:"reason,omitempty"`
}

type AutoAssignReport struct {
	Total    int                `json:"total"`
	Assigned int                `json:"assigned"`
	Skipped  int                `json:"skipped"`
	Details  []AssignmentDetail `json:"details"`
}
