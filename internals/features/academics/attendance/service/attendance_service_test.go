// file: internals/features/academics/attendance/service/attendance_service_test.go
package service

import (
	"testing"

	"kampusku_backend/internals/features/academics/attendance/model"
)

func TestAttendanceLabel(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "excellent"},
		{75, "excellent"},
		{74.9, "good"},
		{65, "good"},
		{64.9, "satisfactory"},
		{50, "satisfactory"},
		{49.9, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		if got := AttendanceLabel(tt.pct); got != tt.want {
			t.Errorf("AttendanceLabel(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("tanpa session sama sekali", func(t *testing.T) {
		s := summarize(nil)
		if s.TotalClasses != 0 || s.Percentage != 0 {
			t.Errorf("summary kosong: total=%d pct=%v, want 0/0", s.TotalClasses, s.Percentage)
		}
		if s.Label != "poor" {
			t.Errorf("Label = %q, want poor", s.Label)
		}
	})

	t.Run("late dihitung hadir", func(t *testing.T) {
		s := summarize([]model.AttendanceStatus{
			model.AttendanceStatusPresent,
			model.AttendanceStatusLate,
			model.AttendanceStatusAbsent,
			model.AttendanceStatusExcused,
		})
		if s.Present != 1 || s.Late != 1 || s.Absent != 1 || s.Excused != 1 {
			t.Errorf("breakdown salah: %+v", s)
		}
		// (present + late) / total = 2/4 = 50%
		if s.Percentage != 50 {
			t.Errorf("Percentage = %v, want 50", s.Percentage)
		}
		if s.Label != "satisfactory" {
			t.Errorf("Label = %q, want satisfactory", s.Label)
		}
	})

	t.Run("semua hadir", func(t *testing.T) {
		s := summarize([]model.AttendanceStatus{
			model.AttendanceStatusPresent,
			model.AttendanceStatusPresent,
			model.AttendanceStatusPresent,
		})
		if s.Percentage != 100 || s.Label != "excellent" {
			t.Errorf("pct=%v label=%q, want 100/excellent", s.Percentage, s.Label)
		}
	})

	t.Run("pembulatan", func(t *testing.T) {
		// 2 hadir dari 3 = 66.67 → round ke 67
		s := summarize([]model.AttendanceStatus{
			model.AttendanceStatusPresent,
			model.AttendanceStatusPresent,
			model.AttendanceStatusAbsent,
		})
		if s.Percentage != 67 {
			t.Errorf("Percentage = %v, want 67", s.Percentage)
		}
	})
}
