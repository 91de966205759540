// file: internals/features/academics/promotion/service/promotion_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/grading"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	studentService "kampusku_backend/internals/features/academics/students/service"
)

func TestClassifyStudent(t *testing.T) {
	tests := []struct {
		name        string
		perf        grading.SemesterPerformance
		attendance  float64
		semester    int
		subCount    int
		wantOutcome string
		wantReason  string
	}{
		{
			name:        "tanpa submission graded",
			perf:        grading.SemesterPerformance{},
			attendance:  100,
			semester:    3,
			subCount:    0,
			wantOutcome: OutcomeFailed,
			wantReason:  "No graded submissions found",
		},
		{
			name:        "main belum dikumpulkan",
			perf:        grading.SemesterPerformance{MainAssignmentsCompleted: false},
			attendance:  90,
			semester:    3,
			subCount:    4,
			wantOutcome: OutcomeFailed,
			wantReason:  "Main assignments not completed",
		},
		{
			name: "main gagal",
			perf: grading.SemesterPerformance{
				MainAssignmentsCompleted: true,
				MainAssignmentsPassed:    false,
			},
			attendance:  90,
			semester:    3,
			subCount:    4,
			wantOutcome: OutcomeFailed,
			wantReason:  "Failed main assignments (marks below 40%)",
		},
		{
			name: "lulus tapi kehadiran kurang",
			perf: grading.SemesterPerformance{
				MainAssignmentsCompleted: true,
				MainAssignmentsPassed:    true,
			},
			attendance:  74.9,
			semester:    3,
			subCount:    4,
			wantOutcome: OutcomeManualReview,
			wantReason:  "Attendance below 75% - manual review required",
		},
		{
			name: "lulus dan hadir cukup",
			perf: grading.SemesterPerformance{
				MainAssignmentsCompleted: true,
				MainAssignmentsPassed:    true,
			},
			attendance:  75,
			semester:    3,
			subCount:    4,
			wantOutcome: OutcomePromoted,
			wantReason:  "Promoted to semester 4",
		},
		{
			name: "lulus semester terakhir",
			perf: grading.SemesterPerformance{
				MainAssignmentsCompleted: true,
				MainAssignmentsPassed:    true,
			},
			attendance:  80,
			semester:    8,
			subCount:    4,
			wantOutcome: OutcomeGraduated,
			wantReason:  "Completed final semester",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStudent(tt.perf, tt.attendance, tt.semester, tt.subCount)
			if got.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %q, want %q", got.Outcome, tt.wantOutcome)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestApplyOutcome(t *testing.T) {
	groupID := uuid.New()

	mkStudent := func(semester int) studentModel.StudentModel {
		gid := groupID
		return studentModel.StudentModel{
			StudentID:              uuid.New(),
			StudentStatus:          studentModel.StudentStatusActive,
			StudentCurrentSemester: semester,
			StudentGroupID:         &gid,
		}
	}

	t.Run("promoted naik semester dan lepas group", func(t *testing.T) {
		student := mkStudent(3)
		passed := applyOutcome(&student, OutcomePromoted, 3)

		if !passed {
			t.Error("promoted harus menghasilkan passed = true")
		}
		if student.StudentCurrentSemester != 4 {
			t.Errorf("CurrentSemester = %d, want 4", student.StudentCurrentSemester)
		}
		if student.StudentGroupID != nil {
			t.Error("GroupID harus di-reset supaya auto-assign membagikan ulang")
		}
		if student.StudentStatus != studentModel.StudentStatusActive {
			t.Errorf("Status = %q, harus tetap active", student.StudentStatus)
		}
	})

	t.Run("graduated terminal, semester tetap", func(t *testing.T) {
		student := mkStudent(8)
		passed := applyOutcome(&student, OutcomeGraduated, 8)

		if !passed {
			t.Error("graduated harus menghasilkan passed = true")
		}
		if student.StudentCurrentSemester != 8 {
			t.Errorf("CurrentSemester = %d, want 8 (tidak naik)", student.StudentCurrentSemester)
		}
		if student.StudentGroupID != nil {
			t.Error("GroupID harus dikosongkan saat lulus")
		}
		if student.StudentStatus != studentModel.StudentStatusGraduated {
			t.Errorf("Status = %q, want graduated", student.StudentStatus)
		}
	})

	t.Run("failed hanya mengubah status", func(t *testing.T) {
		student := mkStudent(5)
		passed := applyOutcome(&student, OutcomeFailed, 5)

		if passed {
			t.Error("failed harus menghasilkan passed = false")
		}
		if student.StudentStatus != studentModel.StudentStatusFailed {
			t.Errorf("Status = %q, want failed", student.StudentStatus)
		}
		if student.StudentCurrentSemester != 5 {
			t.Errorf("CurrentSemester = %d, want 5 (tidak berubah)", student.StudentCurrentSemester)
		}
		if student.StudentGroupID == nil {
			t.Error("GroupID tidak boleh disentuh di jalur failed")
		}
	})

	t.Run("manual review tidak memutasi apa pun", func(t *testing.T) {
		student := mkStudent(2)
		passed := applyOutcome(&student, OutcomeManualReview, 2)

		if passed {
			t.Error("manual review harus menghasilkan passed = false")
		}
		if student.StudentStatus != studentModel.StudentStatusActive ||
			student.StudentCurrentSemester != 2 ||
			student.StudentGroupID == nil {
			t.Error("manual review tidak boleh mengubah student")
		}
	})
}

func TestManualPromotionGate(t *testing.T) {
	passedPerf := grading.SemesterPerformance{
		MainAssignmentsCompleted: true,
		MainAssignmentsPassed:    true,
	}

	t.Run("override kehadiran rendah", func(t *testing.T) {
		// Jalur otomatis menahan student ini karena kehadiran.
		auto := classifyStudent(passedPerf, 40, 3, 5)
		if auto.Outcome != OutcomeManualReview {
			t.Fatalf("Outcome otomatis = %q, want %q", auto.Outcome, OutcomeManualReview)
		}

		// Jalur manual tetap mem-promote: kehadiran tidak dicek.
		cls, ok := manualPromotionGate(passedPerf, 3)
		if !ok {
			t.Fatal("gate manual harus meloloskan student dengan main lulus")
		}
		if cls.Outcome != OutcomePromoted {
			t.Errorf("Outcome = %q, want %q", cls.Outcome, OutcomePromoted)
		}
	})

	t.Run("semester terakhir lulus", func(t *testing.T) {
		cls, ok := manualPromotionGate(passedPerf, 8)
		if !ok || cls.Outcome != OutcomeGraduated {
			t.Errorf("gate semester 8 = (%q, %v), want (%q, true)", cls.Outcome, ok, OutcomeGraduated)
		}
	})

	t.Run("main gagal tetap ditolak", func(t *testing.T) {
		failedPerf := grading.SemesterPerformance{
			MainAssignmentsCompleted: true,
			MainAssignmentsPassed:    false,
		}
		if _, ok := manualPromotionGate(failedPerf, 3); ok {
			t.Error("gate manual tidak boleh meloloskan main yang gagal")
		}
	})
}

func TestTolerableRecordErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
		want    bool
	}{
		{"failed tanpa group", studentService.ErrMissingGroupContext, OutcomeFailed, true},
		{"failed tanpa group, error terbungkus", fmt.Errorf("ensure record: %w", studentService.ErrMissingGroupContext), OutcomeFailed, true},
		{"promoted wajib tercatat", studentService.ErrMissingGroupContext, OutcomePromoted, false},
		{"graduated wajib tercatat", studentService.ErrMissingGroupContext, OutcomeGraduated, false},
		{"error lain tidak ditoleransi", errors.New("db down"), OutcomeFailed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tolerableRecordErr(tt.err, tt.outcome); got != tt.want {
				t.Errorf("tolerableRecordErr = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyStudentAttendanceBoundary(t *testing.T) {
	perf := grading.SemesterPerformance{
		MainAssignmentsCompleted: true,
		MainAssignmentsPassed:    true,
	}
	// Tepat di threshold 75 → auto-promote, bukan manual review.
	if got := classifyStudent(perf, 75.0, 2, 3); got.Outcome != OutcomePromoted {
		t.Errorf("attendance 75.0: Outcome = %q, want %q", got.Outcome, OutcomePromoted)
	}
	if got := classifyStudent(perf, 74.99, 2, 3); got.Outcome != OutcomeManualReview {
		t.Errorf("attendance 74.99: Outcome = %q, want %q", got.Outcome, OutcomeManualReview)
	}
}
