// file: internals/features/academics/assignments/service/grading_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignDto "kampusku_backend/internals/features/academics/assignments/dto"
	"kampusku_backend/internals/features/academics/assignments/model"
	"kampusku_backend/internals/features/academics/grading"
	studentService "kampusku_backend/internals/features/academics/students/service"
)

var (
	ErrSubmissionNotFound = errors.New("submission tidak ditemukan")
	ErrAssignmentNotFound = errors.New("assignment tidak ditemukan")
	ErrMarksOutOfRange    = errors.New("marks di luar rentang 0..max_marks")
	ErrSubmissionExists   = errors.New("submission untuk assignment ini sudah ada")
)

// GradingService menilai satu submission dan meneruskan hasilnya ke
// academic history dalam satu transaksi.
type GradingService struct {
	DB      *gorm.DB
	history *studentService.HistoryService
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{
		DB:      db,
		history: studentService.NewHistoryService(db),
	}
}

// GradeSubmission: validasi marks terhadap max_marks assignment, update
// submission jadi graded, lalu merge hasil ke subject record student.
// Regrade dengan nilai sama menghasilkan subject record identik
// (weekly di-upsert per assignment, main di-overwrite).
func (svc *GradingService) GradeSubmission(ctx context.Context, submissionID uuid.UUID, marks float64, feedback *string, gradedBy uuid.UUID) (*assignDto.GradeSubmissionResponse, error) {
	var resp *assignDto.GradeSubmissionResponse

	err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub model.SubmissionModel
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		var asg model.AssignmentModel
		if err := tx.First(&asg, "assignment_id = ?", sub.SubmissionAssignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		if marks < 0 || marks > asg.AssignmentMaxMarks {
			return ErrMarksOutOfRange
		}

		now := time.Now().UTC()
		sub.SubmissionMarks = &marks
		sub.SubmissionFeedback = feedback
		sub.SubmissionGradedBy = &gradedBy
		sub.SubmissionGradedAt = &now
		sub.SubmissionStatus = model.SubmissionStatusGraded
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		groupID := sub.SubmissionGroupID
		subjectRecord, err := svc.history.ApplyGradedResult(ctx, tx, studentService.GradedResultInput{
			StudentID: sub.SubmissionStudentID,
			Semester:  asg.AssignmentSemester,
			SubjectID: asg.AssignmentSubjectID,
			TeacherID: asg.AssignmentTeacherID,
			Kind:      asg.AssignmentType,
			GroupID:   &groupID,
			Entry: studentService.GradedEntry{
				AssignmentID: asg.AssignmentID,
				Marks:        marks,
				MaxMarks:     asg.AssignmentMaxMarks,
				SubmittedAt:  &sub.SubmissionSubmittedAt,
				GradedAt:     now,
			},
		})
		if err != nil {
			return err
		}

		resp = &assignDto.GradeSubmissionResponse{
			Submission:    sub,
			SubjectRecord: *subjectRecord,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GradedSubmissionsForSemester mengambil seluruh submission graded
// milik student pada semester tertentu, di-join dengan assignment-nya,
// sebagai input murni evaluator (dipakai promotion engine).
func (svc *GradingService) GradedSubmissionsForSemester(ctx context.Context, studentID uuid.UUID, semester int) ([]grading.GradedSubmission, error) {
	type row struct {
		AssignmentID uuid.UUID
		SubjectID    uuid.UUID
		TeacherID    uuid.UUID
		Kind         grading.AssignmentKind
		Marks        float64
		MaxMarks     float64
		SubmittedAt  time.Time
		GradedAt     *time.Time
	}

	var rows []row
	err := svc.DB.WithContext(ctx).
		Table("submissions").
		Select(`assignments.assignment_id   AS assignment_id,
			assignments.assignment_subject_id AS subject_id,
			assignments.assignment_teacher_id AS teacher_id,
			assignments.assignment_type       AS kind,
			submissions.submission_marks      AS marks,
			assignments.assignment_max_marks  AS max_marks,
			submissions.submission_submitted_at AS submitted_at,
			submissions.submission_graded_at    AS graded_at`).
		Joins("JOIN assignments ON assignments.assignment_id = submissions.submission_assignment_id").
		Where("submissions.submission_student_id = ?", studentID).
		Where("submissions.submission_status = ?", model.SubmissionStatusGraded).
		Where("assignments.assignment_semester = ?", semester).
		Where("submissions.submission_deleted_at IS NULL").
		Where("assignments.assignment_deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	subs := make([]grading.GradedSubmission, 0, len(rows))
	for _, r := range rows {
		gradedAt := time.Time{}
		if r.GradedAt != nil {
			gradedAt = *r.GradedAt
		}
		submittedAt := r.SubmittedAt
		subs = append(subs, grading.GradedSubmission{
			AssignmentID: r.AssignmentID,
			SubjectID:    r.SubjectID,
			TeacherID:    r.TeacherID,
			Kind:         r.Kind,
			Marks:        r.Marks,
			MaxMarks:     r.MaxMarks,
			SubmittedAt:  &submittedAt,
			GradedAt:     gradedAt,
		})
	}
	return subs, nil
}
