// file: internals/features/academics/promotion/service/promotion_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignService "kampusku_backend/internals/features/academics/assignments/service"
	attService "kampusku_backend/internals/features/academics/attendance/service"
	"kampusku_backend/internals/features/academics/grading"
	promoDto "kampusku_backend/internals/features/academics/promotion/dto"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	studentService "kampusku_backend/internals/features/academics/students/service"
)

var ErrInvalidSemester = errors.New("semester di luar rentang 1..8")

// Outcome klasifikasi per student per semester.
const (
	OutcomePromoted     = "promoted"
	OutcomeGraduated    = "graduated"
	OutcomeFailed       = "failed"
	OutcomeManualReview = "manual_review_required"
)

// Gate kehadiran untuk auto-promote. Di bawah ini (tapi main lulus)
// berarti butuh review manusia, bukan langsung gagal.
const attendanceThreshold = 75.0

// PromotionService menjalankan state machine promosi per semester:
// auto-promote, manual-review, fail, graduate.
type PromotionService struct {
	DB         *gorm.DB
	grading    *assignService.GradingService
	attendance *attService.AttendanceService
	history    *studentService.HistoryService
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{
		DB:         db,
		grading:    assignService.NewGradingService(db),
		attendance: attService.NewAttendanceService(db),
		history:    studentService.NewHistoryService(db),
	}
}

/* =========================
   Classification (pure)
========================= */

type classification struct {
	Outcome string
	Reason  string
}

// classifyStudent menerapkan tabel keputusan promosi.
// submissionCount dihitung terpisah karena "tidak ada submission graded
// sama sekali" adalah outcome tersendiri, bukan error.
func classifyStudent(perf grading.SemesterPerformance, attendancePct float64, semester, submissionCount int) classification {
	switch {
	case submissionCount == 0:
		return classification{Outcome: OutcomeFailed, Reason: "No graded submissions found"}
	case !perf.MainAssignmentsCompleted:
		return classification{Outcome: OutcomeFailed, Reason: "Main assignments not completed"}
	case perf.MainAssignmentsPassed && attendancePct >= attendanceThreshold:
		if semester >= studentModel.MaxSemester {
			return classification{Outcome: OutcomeGraduated, Reason: "Completed final semester"}
		}
		return classification{Outcome: OutcomePromoted, Reason: fmt.Sprintf("Promoted to semester %d", semester+1)}
	case perf.MainAssignmentsPassed:
		return classification{Outcome: OutcomeManualReview, Reason: "Attendance below 75% - manual review required"}
	default:
		return classification{Outcome: OutcomeFailed, Reason: "Failed main assignments (marks below 40%)"}
	}
}

// applyOutcome menerapkan transisi student untuk satu keputusan:
// promoted naik semester dan lepas group (status tetap active supaya
// auto-assign memungutnya lagi), graduated dan failed terminal.
// Return value = nilai semester_record_passed.
func applyOutcome(student *studentModel.StudentModel, outcome string, semester int) bool {
	switch outcome {
	case OutcomePromoted:
		student.StudentCurrentSemester = semester + 1
		student.StudentGroupID = nil
		return true
	case OutcomeGraduated:
		student.StudentStatus = studentModel.StudentStatusGraduated
		student.StudentGroupID = nil
		return true
	case OutcomeFailed:
		student.StudentStatus = studentModel.StudentStatusFailed
	}
	return false
}

// manualPromotionGate: gate jalur manual. Hanya kelulusan main
// assignment yang dicek ulang; kehadiran sengaja tidak dipertimbangkan
// karena reviewer sedang meng-override gate kehadiran.
func manualPromotionGate(perf grading.SemesterPerformance, semester int) (classification, bool) {
	if !perf.MainAssignmentsPassed {
		return classification{}, false
	}
	if semester >= studentModel.MaxSemester {
		return classification{Outcome: OutcomeGraduated}, true
	}
	return classification{Outcome: OutcomePromoted}, true
}

// Missing group saat create record hanya bisa ditoleransi di jalur
// failed: student gagal tanpa group tetap harus berubah status.
// Keputusan promote/graduate wajib tercatat di record.
func tolerableRecordErr(err error, outcome string) bool {
	return errors.Is(err, studentService.ErrMissingGroupContext) && outcome == OutcomeFailed
}

/* =========================
   Batch promotion / report
========================= */

// PromoteSemester mengevaluasi & memutasi seluruh student aktif di
// semester tsb. Report berisi counts + detail per student supaya caller
// bisa merekonsiliasi hasil batch.
func (svc *PromotionService) PromoteSemester(ctx context.Context, semester int, promotedBy uuid.UUID) (*promoDto.PromotionReport, error) {
	return svc.evaluateSemester(ctx, semester, promotedBy, true)
}

// Report: klasifikasi read-only (dry run) dengan logika yang sama,
// tanpa mutasi apa pun.
func (svc *PromotionService) Report(ctx context.Context, semester int) (*promoDto.PromotionReport, error) {
	return svc.evaluateSemester(ctx, semester, uuid.Nil, false)
}

func (svc *PromotionService) evaluateSemester(ctx context.Context, semester int, promotedBy uuid.UUID, apply bool) (*promoDto.PromotionReport, error) {
	if semester < studentModel.MinSemester || semester > studentModel.MaxSemester {
		return nil, ErrInvalidSemester
	}

	var students []studentModel.StudentModel
	if err := svc.DB.WithContext(ctx).
		Where("student_status = ? AND student_current_semester = ?", studentModel.StudentStatusActive, semester).
		Order("student_enrolled_at ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	report := &promoDto.PromotionReport{
		Semester:            semester,
		Total:               len(students),
		ManualPromotionList: []uuid.UUID{},
		Results:             []promoDto.StudentPromotionResult{},
	}

	// Per student diproses terisolasi: kegagalan satu student dicatat
	// di result list dan batch jalan terus.
	for i := range students {
		student := students[i]
		result := svc.evaluateStudent(ctx, &student, semester, promotedBy, apply)
		report.Results = append(report.Results, result)

		switch result.Outcome {
		case OutcomePromoted:
			report.Promoted++
		case OutcomeGraduated:
			report.Graduated++
		case OutcomeManualReview:
			report.ManualPromotionRequired++
			report.ManualPromotionList = append(report.ManualPromotionList, student.StudentID)
		default:
			report.Failed++
		}
	}

	return report, nil
}

func (svc *PromotionService) evaluateStudent(ctx context.Context, student *studentModel.StudentModel, semester int, promotedBy uuid.UUID, apply bool) promoDto.StudentPromotionResult {
	result := promoDto.StudentPromotionResult{
		StudentID:    student.StudentID,
		StudentName:  student.StudentName,
		FromSemester: semester,
	}

	subs, err := svc.grading.GradedSubmissionsForSemester(ctx, student.StudentID, semester)
	if err != nil {
		log.Printf("[PromotionService] gagal ambil submissions student=%s: %v", student.StudentID, err)
		result.Outcome = OutcomeFailed
		result.Reason = "processing error: " + err.Error()
		return result
	}

	perf := grading.EvaluateSemester(subs)
	attendance := svc.attendance.StudentSummary(ctx, student.StudentID, semester, nil)
	result.Attendance = attendance.Percentage

	cls := classifyStudent(perf, attendance.Percentage, semester, len(subs))
	result.Outcome = cls.Outcome
	result.Reason = cls.Reason

	if cls.Outcome == OutcomePromoted {
		next := semester + 1
		result.ToSemester = &next
	}

	// Manual-review tidak pernah dimutasi otomatis.
	if !apply || cls.Outcome == OutcomeManualReview {
		return result
	}

	if err := svc.applyDecision(ctx, student, semester, cls, promotedBy); err != nil {
		log.Printf("[PromotionService] gagal terapkan keputusan student=%s outcome=%s: %v", student.StudentID, cls.Outcome, err)
		result.Outcome = OutcomeFailed
		result.Reason = "processing error: " + err.Error()
		result.ToSemester = nil
	}
	return result
}

// applyDecision menulis SemesterRecord + memutasi student dalam satu
// transaksi, dengan lock baris student (konsisten dengan history writer).
func (svc *PromotionService) applyDecision(ctx context.Context, student *studentModel.StudentModel, semester int, cls classification, promotedBy uuid.UUID) error {
	return svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked studentModel.StudentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "student_id = ?", student.StudentID).Error; err != nil {
			return err
		}

		rec, err := svc.history.EnsureSemesterRecord(ctx, tx, &locked, semester, locked.StudentGroupID)
		if err != nil {
			if !tolerableRecordErr(err, cls.Outcome) {
				return err
			}
			log.Printf("[PromotionService] record semester dilewati student=%s: %v", locked.StudentID, err)
			rec = nil
		}

		passed := applyOutcome(&locked, cls.Outcome, semester)

		if rec != nil {
			rec.SemesterRecordPassed = passed
			if passed {
				now := time.Now().UTC()
				rec.SemesterRecordPromotedAt = &now
				if promotedBy != uuid.Nil {
					by := promotedBy
					rec.SemesterRecordPromotedBy = &by
				}
			}
			if err := tx.Save(rec).Error; err != nil {
				return err
			}
		}

		return tx.Save(&locked).Error
	})
}

/* =========================
   Manual promotion
========================= */

// PromoteManually mem-promote daftar student hasil review manusia.
// Hanya mainAssignmentsPassed yang dicek ulang — kehadiran SENGAJA
// tidak dicek lagi: reviewer sedang meng-override gate kehadiran.
func (svc *PromotionService) PromoteManually(ctx context.Context, in promoDto.ManualPromotionRequest, promotedBy uuid.UUID) (*promoDto.ManualPromotionResult, error) {
	if in.Semester < studentModel.MinSemester || in.Semester > studentModel.MaxSemester {
		return nil, ErrInvalidSemester
	}

	out := &promoDto.ManualPromotionResult{
		Promoted: []promoDto.ManualPromotionEntry{},
		Failed:   []promoDto.ManualPromotionEntry{},
	}

	for _, id := range in.StudentIDs {
		var student studentModel.StudentModel
		if err := svc.DB.WithContext(ctx).First(&student, "student_id = ?", id).Error; err != nil {
			reason := "student tidak ditemukan"
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				reason = "processing error: " + err.Error()
			}
			out.Failed = append(out.Failed, promoDto.ManualPromotionEntry{StudentID: id, Reason: reason})
			continue
		}
		if student.StudentStatus != studentModel.StudentStatusActive || student.StudentCurrentSemester != in.Semester {
			out.Failed = append(out.Failed, promoDto.ManualPromotionEntry{StudentID: id, Reason: "student tidak aktif di semester ini"})
			continue
		}

		subs, err := svc.grading.GradedSubmissionsForSemester(ctx, id, in.Semester)
		if err != nil {
			out.Failed = append(out.Failed, promoDto.ManualPromotionEntry{StudentID: id, Reason: "processing error: " + err.Error()})
			continue
		}
		perf := grading.EvaluateSemester(subs)
		cls, ok := manualPromotionGate(perf, in.Semester)
		if !ok {
			out.Failed = append(out.Failed, promoDto.ManualPromotionEntry{StudentID: id, Reason: "Failed main assignments (marks below 40%)"})
			continue
		}
		cls.Reason = "manual promotion: " + in.Reason
		if err := svc.applyDecision(ctx, &student, in.Semester, cls, promotedBy); err != nil {
			out.Failed = append(out.Failed, promoDto.ManualPromotionEntry{StudentID: id, Reason: "processing error: " + err.Error()})
			continue
		}
		out.Promoted = append(out.Promoted, promoDto.ManualPromotionEntry{StudentID: id, Reason: cls.Reason})
	}

	return out, nil
}
