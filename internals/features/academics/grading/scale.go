// file: internals/features/academics/grading/scale.go
package grading

import "math"

// PassingPercentage: batas lulus untuk subject & main assignment.
const PassingPercentage = 40.0

// LetterGrade memetakan persentase ke grade huruf.
// Skala tetap: ≥90 A+, ≥80 A, ≥70 B+, ≥60 B, ≥50 C+, ≥40 C, sisanya F.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= PassingPercentage:
		return "C"
	default:
		return "F"
	}
}

// Round2 membulatkan ke 2 desimal (untuk semua persentase di response).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage menghitung obtained/max*100 dengan guard pembagian nol.
func Percentage(obtained, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return obtained / max * 100
}
