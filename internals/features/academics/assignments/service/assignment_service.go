// file: internals/features/academics/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/assignments/model"
)

type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

func (svc *AssignmentService) Create(ctx context.Context, asg *model.AssignmentModel) error {
	return svc.DB.WithContext(ctx).Create(asg).Error
}

func (svc *AssignmentService) List(ctx context.Context, semester *int, offset, limit int) ([]model.AssignmentModel, int64, error) {
	q := svc.DB.WithContext(ctx).Model(&model.AssignmentModel{})
	if semester != nil {
		q = q.Where("assignment_semester = ?", *semester)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SubmitWork mencatat pengumpulan tugas student; status "late" jika
// melewati deadline. Satu submission per (assignment, student).
func (svc *AssignmentService) SubmitWork(ctx context.Context, assignmentID, studentID, groupID uuid.UUID) (*model.SubmissionModel, error) {
	var sub *model.SubmissionModel

	err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asg model.AssignmentModel
		if err := tx.First(&asg, "assignment_id = ?", assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		var dup int64
		if err := tx.Model(&model.SubmissionModel{}).
			Where("submission_assignment_id = ? AND submission_student_id = ?", assignmentID, studentID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrSubmissionExists
		}

		now := time.Now().UTC()
		status := model.SubmissionStatusSubmitted
		if asg.AssignmentDeadline != nil && now.After(*asg.AssignmentDeadline) {
			status = model.SubmissionStatusLate
		}

		s := model.SubmissionModel{
			SubmissionAssignmentID: assignmentID,
			SubmissionStudentID:    studentID,
			SubmissionGroupID:      groupID,
			SubmissionSubjectID:    asg.AssignmentSubjectID,
			SubmissionStatus:       status,
			SubmissionSubmittedAt:  now,
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		sub = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
