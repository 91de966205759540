// file: internals/features/academics/students/service/student_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/students/model"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (svc *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := svc.DB.WithContext(ctx).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

type StudentListFilter struct {
	Semester *int
	Status   *model.StudentStatus
	GroupID  *uuid.UUID
}

func (svc *StudentService) List(ctx context.Context, f StudentListFilter, offset, limit int) ([]model.StudentModel, int64, error) {
	q := svc.DB.WithContext(ctx).Model(&model.StudentModel{})
	if f.Semester != nil {
		q = q.Where("student_current_semester = ?", *f.Semester)
	}
	if f.Status != nil {
		q = q.Where("student_status = ?", *f.Status)
	}
	if f.GroupID != nil {
		q = q.Where("student_group_id = ?", *f.GroupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []model.StudentModel
	if err := q.Order("student_enrolled_at ASC").
		Offset(offset).Limit(limit).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// AcademicHistory mengembalikan seluruh semester record (urut semester)
// berikut subject record-nya.
func (svc *StudentService) AcademicHistory(ctx context.Context, studentID uuid.UUID) ([]model.SemesterRecordModel, error) {
	if _, err := svc.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	var records []model.SemesterRecordModel
	if err := svc.DB.WithContext(ctx).
		Preload("SemesterRecordSubjects").
		Where("semester_record_student_id = ?", studentID).
		Order("semester_record_semester ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
