// file: internals/features/academics/students/service/history_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/features/academics/grading"
	"kampusku_backend/internals/features/academics/students/model"
)

var (
	ErrStudentNotFound     = errors.New("student tidak ditemukan")
	ErrInvalidSemester     = errors.New("semester di luar rentang 1..8")
	ErrMissingGroupContext = errors.New("group context tidak tersedia untuk membuat semester record")
)

// GradedEntry: satu hasil penilaian yang akan di-merge ke history.
type GradedEntry struct {
	AssignmentID uuid.UUID
	Marks        float64
	MaxMarks     float64
	SubmittedAt  *time.Time
	GradedAt     time.Time
}

type GradedResultInput struct {
	StudentID uuid.UUID
	Semester  int
	SubjectID uuid.UUID
	TeacherID uuid.UUID
	Kind      grading.AssignmentKind

	// Group context untuk pembuatan SemesterRecord pertama kali.
	// Boleh nil kalau record semester sudah ada atau student masih
	// punya group aktif.
	GroupID *uuid.UUID

	Entry GradedEntry
}

// HistoryService meng-merge hasil penilaian ke academic history student
// secara idempoten, tanpa menghapus entry yang sudah ada.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// ApplyGradedResult berjalan di dalam transaksi pemanggil (tx) dan
// MENGUNCI baris student (SELECT ... FOR UPDATE) supaya dua grading
// bersamaan untuk subject berbeda pada student yang sama terserialisasi,
// bukan saling menimpa.
func (svc *HistoryService) ApplyGradedResult(ctx context.Context, tx *gorm.DB, in GradedResultInput) (*model.SubjectRecordModel, error) {
	if in.Semester < model.MinSemester || in.Semester > model.MaxSemester {
		return nil, ErrInvalidSemester
	}

	var student model.StudentModel
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&student, "student_id = ?", in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	rec, err := svc.ensureSemesterRecordTx(ctx, tx, &student, in.Semester, in.GroupID)
	if err != nil {
		return nil, err
	}

	subj, err := svc.ensureSubjectRecordTx(ctx, tx, rec, in.SubjectID, in.TeacherID)
	if err != nil {
		return nil, err
	}

	switch in.Kind {
	case grading.AssignmentKindMain:
		// Satu main result per subject per semester — last grading wins.
		subj.SubjectRecordMainResult = datatypes.NewJSONType(&model.MainAssignmentResult{
			AssignmentID: in.Entry.AssignmentID,
			Marks:        in.Entry.Marks,
			MaxMarks:     in.Entry.MaxMarks,
			SubmittedAt:  in.Entry.SubmittedAt,
			GradedAt:     in.Entry.GradedAt,
		})
	default:
		weekly := model.UpsertWeeklyResult(subj.SubjectRecordWeeklyResults.Data(), model.WeeklyAssignmentResult{
			AssignmentID: in.Entry.AssignmentID,
			Marks:        in.Entry.Marks,
			MaxMarks:     in.Entry.MaxMarks,
			SubmittedAt:  in.Entry.SubmittedAt,
			GradedAt:     in.Entry.GradedAt,
		})
		subj.SubjectRecordWeeklyResults = datatypes.NewJSONType(weekly)
	}

	subj.Recompute()

	if err := tx.WithContext(ctx).Save(subj).Error; err != nil {
		return nil, err
	}
	return subj, nil
}

// EnsureSemesterRecord membuat/mengambil record semester di dalam
// transaksi sendiri (dipakai promotion engine saat mencatat keputusan).
func (svc *HistoryService) EnsureSemesterRecord(ctx context.Context, tx *gorm.DB, student *model.StudentModel, semester int, groupID *uuid.UUID) (*model.SemesterRecordModel, error) {
	return svc.ensureSemesterRecordTx(ctx, tx, student, semester, groupID)
}

func (svc *HistoryService) ensureSemesterRecordTx(ctx context.Context, tx *gorm.DB, student *model.StudentModel, semester int, groupID *uuid.UUID) (*model.SemesterRecordModel, error) {
	var rec model.SemesterRecordModel
	err := tx.WithContext(ctx).
		First(&rec, "semester_record_student_id = ? AND semester_record_semester = ?", student.StudentID, semester).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Lazy create: butuh group untuk distempel di record.
	gid := groupID
	if gid == nil {
		gid = student.StudentGroupID
	}
	if gid == nil {
		return nil, ErrMissingGroupContext
	}

	rec = model.SemesterRecordModel{
		SemesterRecordStudentID: student.StudentID,
		SemesterRecordSemester:  semester,
		SemesterRecordGroupID:   *gid,
	}
	if err := tx.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (svc *HistoryService) ensureSubjectRecordTx(ctx context.Context, tx *gorm.DB, rec *model.SemesterRecordModel, subjectID, teacherID uuid.UUID) (*model.SubjectRecordModel, error) {
	var subj model.SubjectRecordModel
	err := tx.WithContext(ctx).
		First(&subj, "subject_record_semester_record_id = ? AND subject_record_subject_id = ?", rec.SemesterRecordID, subjectID).Error
	if err == nil {
		return &subj, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subj = model.SubjectRecordModel{
		SubjectRecordSemesterRecordID: rec.SemesterRecordID,
		SubjectRecordSubjectID:        subjectID,
		SubjectRecordTeacherID:        teacherID, // distempel saat create
		SubjectRecordWeeklyResults:    datatypes.NewJSONType([]model.WeeklyAssignmentResult{}),
		SubjectRecordGrade:            "F",
	}
	if err := tx.WithContext(ctx).Create(&subj).Error; err != nil {
		return nil, err
	}
	return &subj, nil
}
