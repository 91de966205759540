// file: internals/features/academics/students/model/academic_history_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func weekly(id uuid.UUID, marks, max float64) WeeklyAssignmentResult {
	return WeeklyAssignmentResult{
		AssignmentID: id,
		Marks:        marks,
		MaxMarks:     max,
		GradedAt:     time.Now(),
	}
}

func TestUpsertWeeklyResult(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("append baru", func(t *testing.T) {
		list := UpsertWeeklyResult(nil, weekly(a, 8, 10))
		if len(list) != 1 {
			t.Fatalf("len = %d, want 1", len(list))
		}
		list = UpsertWeeklyResult(list, weekly(b, 6, 10))
		if len(list) != 2 {
			t.Fatalf("len = %d, want 2", len(list))
		}
	})

	t.Run("regrade replace, bukan append", func(t *testing.T) {
		list := UpsertWeeklyResult(nil, weekly(a, 5, 10))
		list = UpsertWeeklyResult(list, weekly(a, 9, 10))
		if len(list) != 1 {
			t.Fatalf("len = %d, want 1 (regrade tidak boleh menambah entry)", len(list))
		}
		if list[0].Marks != 9 {
			t.Errorf("Marks = %v, want 9 (nilai terakhir menang)", list[0].Marks)
		}
	})

	t.Run("regrade idempoten", func(t *testing.T) {
		list := UpsertWeeklyResult(nil, weekly(a, 7, 10))
		again := UpsertWeeklyResult(list, weekly(a, 7, 10))
		if len(again) != 1 || again[0].Marks != 7 {
			t.Error("regrade dengan nilai sama harus menghasilkan list identik")
		}
	})
}

func TestRecompute(t *testing.T) {
	mainID := uuid.New()

	t.Run("main plus weekly", func(t *testing.T) {
		rec := SubjectRecordModel{
			SubjectRecordMainResult: datatypes.NewJSONType(&MainAssignmentResult{
				AssignmentID: mainID,
				Marks:        45,
				MaxMarks:     100,
				GradedAt:     time.Now(),
			}),
			SubjectRecordWeeklyResults: datatypes.NewJSONType([]WeeklyAssignmentResult{
				weekly(uuid.New(), 8, 10),
				weekly(uuid.New(), 7, 10),
			}),
		}
		rec.Recompute()

		if rec.SubjectRecordTotalMarks != 60 || rec.SubjectRecordMaxMarks != 120 {
			t.Errorf("total = %v/%v, want 60/120", rec.SubjectRecordTotalMarks, rec.SubjectRecordMaxMarks)
		}
		if rec.SubjectRecordPercentage != 50 {
			t.Errorf("Percentage = %v, want 50", rec.SubjectRecordPercentage)
		}
		if rec.SubjectRecordGrade != "C+" {
			t.Errorf("Grade = %q, want C+", rec.SubjectRecordGrade)
		}
		if !rec.SubjectRecordPassed {
			t.Error("Passed harus true di 50%")
		}
	})

	t.Run("tanpa entry", func(t *testing.T) {
		rec := SubjectRecordModel{
			SubjectRecordWeeklyResults: datatypes.NewJSONType([]WeeklyAssignmentResult{}),
		}
		rec.Recompute()
		if rec.SubjectRecordPercentage != 0 || rec.SubjectRecordGrade != "F" || rec.SubjectRecordPassed {
			t.Errorf("record kosong: pct=%v grade=%q passed=%v, want 0/F/false",
				rec.SubjectRecordPercentage, rec.SubjectRecordGrade, rec.SubjectRecordPassed)
		}
	})

	t.Run("tepat di batas lulus", func(t *testing.T) {
		rec := SubjectRecordModel{
			SubjectRecordWeeklyResults: datatypes.NewJSONType([]WeeklyAssignmentResult{
				weekly(uuid.New(), 40, 100),
			}),
		}
		rec.Recompute()
		if rec.SubjectRecordGrade != "C" || !rec.SubjectRecordPassed {
			t.Errorf("40%% harus C/passed, got %q/%v", rec.SubjectRecordGrade, rec.SubjectRecordPassed)
		}
	})
}
