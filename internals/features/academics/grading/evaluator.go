// file: internals/features/academics/grading/evaluator.go
package grading

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentKind string

const (
	AssignmentKindWeekly AssignmentKind = "weekly"
	AssignmentKindMain   AssignmentKind = "main"
)

func (k AssignmentKind) Valid() bool {
	return k == AssignmentKindWeekly || k == AssignmentKindMain
}

// GradedSubmission adalah satu submission yang sudah dinilai,
// di-join dengan assignment induknya. Input murni untuk evaluator
// (tanpa I/O) supaya bisa diuji langsung.
type GradedSubmission struct {
	AssignmentID uuid.UUID
	SubjectID    uuid.UUID
	TeacherID    uuid.UUID
	Kind         AssignmentKind
	Marks        float64
	MaxMarks     float64
	SubmittedAt  *time.Time
	GradedAt     time.Time
}

// MainAssignmentCheck: hasil cek satu main assignment.
type MainAssignmentCheck struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Marks        float64   `json:"marks"`
	MaxMarks     float64   `json:"max_marks"`
	Percentage   float64   `json:"percentage"`
	Passed       bool      `json:"passed"`
}

// SubjectPerformance: rollup nilai per subject (main + weekly).
type SubjectPerformance struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	TotalObtained float64   `json:"total_obtained"`
	TotalMax      float64   `json:"total_max"`
	Percentage    float64   `json:"percentage"`
	Grade         string    `json:"grade"`
	Passed        bool      `json:"passed"`
}

// SemesterPerformance: hasil evaluasi satu semester untuk satu student.
type SemesterPerformance struct {
	MainAssignmentsCompleted bool                  `json:"main_assignments_completed"`
	MainAssignmentsPassed    bool                  `json:"main_assignments_passed"`
	MainAssignmentResults    []MainAssignmentCheck `json:"main_assignment_results"`
	SubjectResults           []SubjectPerformance  `json:"subject_results"`
}

// EvaluateSemester memisahkan submission main vs weekly, mengecek
// kelulusan main assignment, lalu me-rollup nilai per subject.
//
// Aturan main assignment:
//   - completed = minimal ada satu submission main yang dinilai
//   - passed    = SEMUA submission main ≥ 40%; tanpa submission main
//     sama sekali, passed = false (completion adalah prasyarat,
//     bukan vacuous truth)
func EvaluateSemester(subs []GradedSubmission) SemesterPerformance {
	perf := SemesterPerformance{
		MainAssignmentResults: []MainAssignmentCheck{},
		SubjectResults:        []SubjectPerformance{},
	}

	allMainPassed := true
	for _, s := range subs {
		if s.Kind != AssignmentKindMain {
			continue
		}
		perf.MainAssignmentsCompleted = true
		pct := Percentage(s.Marks, s.MaxMarks)
		passed := pct >= PassingPercentage
		if !passed {
			allMainPassed = false
		}
		perf.MainAssignmentResults = append(perf.MainAssignmentResults, MainAssignmentCheck{
			AssignmentID: s.AssignmentID,
			Marks:        s.Marks,
			MaxMarks:     s.MaxMarks,
			Percentage:   Round2(pct),
			Passed:       passed,
		})
	}
	perf.MainAssignmentsPassed = perf.MainAssignmentsCompleted && allMainPassed

	// Rollup per subject: semua submission (main + weekly) dijumlahkan.
	// Urutan subject mengikuti kemunculan pertama supaya deterministik.
	type bucket struct {
		teacherID     uuid.UUID
		totalObtained float64
		totalMax      float64
	}
	order := []uuid.UUID{}
	buckets := map[uuid.UUID]*bucket{}
	for _, s := range subs {
		b, ok := buckets[s.SubjectID]
		if !ok {
			b = &bucket{teacherID: s.TeacherID}
			buckets[s.SubjectID] = b
			order = append(order, s.SubjectID)
		}
		b.totalObtained += s.Marks
		b.totalMax += s.MaxMarks
	}
	for _, subjectID := range order {
		b := buckets[subjectID]
		pct := Percentage(b.totalObtained, b.totalMax)
		perf.SubjectResults = append(perf.SubjectResults, SubjectPerformance{
			SubjectID:     subjectID,
			TeacherID:     b.teacherID,
			TotalObtained: b.totalObtained,
			TotalMax:      b.totalMax,
			Percentage:    Round2(pct),
			Grade:         LetterGrade(pct),
			Passed:        pct >= PassingPercentage,
		})
	}

	return perf
}
