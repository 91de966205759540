// file: internals/features/academics/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"kampusku_backend/internals/features/academics/assignments/model"
	"kampusku_backend/internals/features/academics/grading"
	studentModel "kampusku_backend/internals/features/academics/students/model"
)

/* =========================
   Requests
========================= */

type CreateAssignmentRequest struct {
	AssignmentTitle     string     `json:"assignment_title" validate:"required,max=120"`
	AssignmentType      string     `json:"assignment_type" validate:"required,oneof=weekly main"`
	AssignmentSemester  int        `json:"assignment_semester" validate:"required,min=1,max=8"`
	AssignmentSubjectID uuid.UUID  `json:"assignment_subject_id" validate:"required"`
	AssignmentTeacherID uuid.UUID  `json:"assignment_teacher_id" validate:"required"`
	AssignmentMaxMarks  float64    `json:"assignment_max_marks" validate:"required,gt=0"`
	AssignmentDeadline  *time.Time `json:"assignment_deadline,omitempty"`
	AssignmentGroupIDs  []string   `json:"assignment_group_ids" validate:"dive,uuid4"`
}

func (r CreateAssignmentRequest) ToModel() model.AssignmentModel {
	return model.AssignmentModel{
		AssignmentTitle:     r.AssignmentTitle,
		AssignmentType:      grading.AssignmentKind(r.AssignmentType),
		AssignmentSemester:  r.AssignmentSemester,
		AssignmentSubjectID: r.AssignmentSubjectID,
		AssignmentTeacherID: r.AssignmentTeacherID,
		AssignmentMaxMarks:  r.AssignmentMaxMarks,
		AssignmentDeadline:  r.AssignmentDeadline,
		AssignmentGroupIDs:  pq.StringArray(r.AssignmentGroupIDs),
	}
}

type SubmitWorkRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	GroupID      uuid.UUID `json:"group_id" validate:"required"`
}

type GradeSubmissionRequest struct {
	Marks    float64 `json:"marks" validate:"min=0"`
	Feedback *string `json:"feedback,omitempty"`
}

/* =========================
   Responses
========================= */

// GradeSubmissionResponse: submission ter-update + subject record yang
// sudah dihitung ulang (kontrak grading endpoint).
type GradeSubmissionResponse struct {
	Submission    model.SubmissionModel           `json:"submission"`
	SubjectRecord studentModel.SubjectRecordModel `json:"subject_record"`
}
