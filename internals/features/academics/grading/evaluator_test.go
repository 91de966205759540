// file: internals/features/academics/grading/evaluator_test.go
package grading

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func graded(subject uuid.UUID, kind AssignmentKind, marks, max float64) GradedSubmission {
	now := time.Now()
	return GradedSubmission{
		AssignmentID: uuid.New(),
		SubjectID:    subject,
		TeacherID:    uuid.New(),
		Kind:         kind,
		Marks:        marks,
		MaxMarks:     max,
		SubmittedAt:  &now,
		GradedAt:     now,
	}
}

func TestEvaluateSemesterEmpty(t *testing.T) {
	perf := EvaluateSemester(nil)
	if perf.MainAssignmentsCompleted {
		t.Error("tanpa submission, MainAssignmentsCompleted harus false")
	}
	if perf.MainAssignmentsPassed {
		t.Error("tanpa submission, MainAssignmentsPassed harus false")
	}
	if len(perf.SubjectResults) != 0 {
		t.Errorf("SubjectResults = %d, want 0", len(perf.SubjectResults))
	}
}

func TestEvaluateSemesterWeeklyOnly(t *testing.T) {
	subject := uuid.New()
	perf := EvaluateSemester([]GradedSubmission{
		graded(subject, AssignmentKindWeekly, 8, 10),
		graded(subject, AssignmentKindWeekly, 9, 10),
	})

	if perf.MainAssignmentsCompleted {
		t.Error("weekly saja tidak boleh dihitung sebagai main completed")
	}
	if perf.MainAssignmentsPassed {
		t.Error("passed = false kalau tidak ada main sama sekali")
	}
	if len(perf.SubjectResults) != 1 {
		t.Fatalf("SubjectResults = %d, want 1", len(perf.SubjectResults))
	}
	got := perf.SubjectResults[0]
	if got.TotalObtained != 17 || got.TotalMax != 20 {
		t.Errorf("rollup = %v/%v, want 17/20", got.TotalObtained, got.TotalMax)
	}
	if got.Grade != "A" {
		t.Errorf("Grade = %q, want A (85%%)", got.Grade)
	}
}

func TestEvaluateSemesterMainPassing(t *testing.T) {
	tests := []struct {
		name          string
		mains         [][2]float64 // marks, max
		wantCompleted bool
		wantPassed    bool
	}{
		{"single passing main", [][2]float64{{40, 100}}, true, true},
		{"single failing main", [][2]float64{{39.99, 100}}, true, false},
		{"one of two failing", [][2]float64{{90, 100}, {30, 100}}, true, false},
		{"all passing", [][2]float64{{55, 100}, {41, 100}}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := []GradedSubmission{}
			for _, m := range tt.mains {
				subs = append(subs, graded(uuid.New(), AssignmentKindMain, m[0], m[1]))
			}
			perf := EvaluateSemester(subs)
			if perf.MainAssignmentsCompleted != tt.wantCompleted {
				t.Errorf("MainAssignmentsCompleted = %v, want %v", perf.MainAssignmentsCompleted, tt.wantCompleted)
			}
			if perf.MainAssignmentsPassed != tt.wantPassed {
				t.Errorf("MainAssignmentsPassed = %v, want %v", perf.MainAssignmentsPassed, tt.wantPassed)
			}
			if len(perf.MainAssignmentResults) != len(tt.mains) {
				t.Errorf("MainAssignmentResults = %d, want %d", len(perf.MainAssignmentResults), len(tt.mains))
			}
		})
	}
}

func TestEvaluateSemesterSubjectOrderDeterministic(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	perf := EvaluateSemester([]GradedSubmission{
		graded(s1, AssignmentKindWeekly, 5, 10),
		graded(s2, AssignmentKindMain, 50, 100),
		graded(s1, AssignmentKindMain, 60, 100),
	})
	if len(perf.SubjectResults) != 2 {
		t.Fatalf("SubjectResults = %d, want 2", len(perf.SubjectResults))
	}
	// Urutan mengikuti kemunculan pertama di input.
	if perf.SubjectResults[0].SubjectID != s1 || perf.SubjectResults[1].SubjectID != s2 {
		t.Error("urutan subject tidak mengikuti kemunculan pertama")
	}
	// s1: (5+60)/(10+100) = 59.09% → C+
	if perf.SubjectResults[0].Percentage != 59.09 {
		t.Errorf("Percentage s1 = %v, want 59.09", perf.SubjectResults[0].Percentage)
	}
	if perf.SubjectResults[0].Grade != "C+" {
		t.Errorf("Grade s1 = %q, want C+", perf.SubjectResults[0].Grade)
	}
}
