// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	StudentName     string     `json:"student_name" validate:"required,max=80"`
	StudentCode     string     `json:"student_code" validate:"required,max=50"`
	StudentUserID   *uuid.UUID `json:"student_user_id,omitempty"`
	StudentSemester int        `json:"student_semester" validate:"omitempty,min=1,max=8"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	semester := r.StudentSemester
	if semester == 0 {
		semester = model.MinSemester
	}
	return model.StudentModel{
		StudentName:            r.StudentName,
		StudentCode:            r.StudentCode,
		StudentUserID:          r.StudentUserID,
		StudentCurrentSemester: semester,
		StudentStatus:          model.StudentStatusActive,
	}
}
