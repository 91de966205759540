// file: internals/features/academics/grading/scale_test.go
package grading

import "testing"

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"perfect", 100, "A+"},
		{"a plus boundary", 90, "A+"},
		{"just below a plus", 89.99, "A"},
		{"a boundary", 80, "A"},
		{"b plus boundary", 70, "B+"},
		{"b boundary", 60, "B"},
		{"c plus boundary", 50, "C+"},
		{"passing boundary", 40, "C"},
		{"just below passing", 39.99, "F"},
		{"zero", 0, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterGrade(tt.pct); got != tt.want {
				t.Errorf("LetterGrade(%v) = %q, want %q", tt.pct, got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      float64
		want     float64
	}{
		{"half", 50, 100, 50},
		{"full", 30, 30, 100},
		{"zero max", 10, 0, 0},
		{"negative max", 10, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.obtained, tt.max); got != tt.want {
				t.Errorf("Percentage(%v, %v) = %v, want %v", tt.obtained, tt.max, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(66.666666); got != 66.67 {
		t.Errorf("Round2(66.666666) = %v, want 66.67", got)
	}
	if got := Round2(39.994); got != 39.99 {
		t.Errorf("Round2(39.994) = %v, want 39.99", got)
	}
}
