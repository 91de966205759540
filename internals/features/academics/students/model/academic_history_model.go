// file: internals/features/academics/students/model/academic_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kampusku_backend/internals/features/academics/grading"
)

// MainAssignmentResult dan WeeklyAssignmentResult adalah varian
// eksplisit (bukan satu struct dengan tag string): satu main result
// per subject per semester (last grading wins), weekly berupa list
// yang di-upsert per assignment_id.

type MainAssignmentResult struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	Marks        float64    `json:"marks"`
	MaxMarks     float64    `json:"max_marks"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	GradedAt     time.Time  `json:"graded_at"`
}

type WeeklyAssignmentResult struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	Marks        float64    `json:"marks"`
	MaxMarks     float64    `json:"max_marks"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	GradedAt     time.Time  `json:"graded_at"`
}

// SemesterRecordModel: satu baris per (student, semester), dibuat lazy
// saat submission pertama semester itu dinilai atau saat keputusan
// promosi dicatat.
type SemesterRecordModel struct {
	SemesterRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_record_id" json:"semester_record_id"`

	SemesterRecordStudentID uuid.UUID `gorm:"type:uuid;not null;column:semester_record_student_id;uniqueIndex:uq_semester_record_student_semester" json:"semester_record_student_id"`
	SemesterRecordSemester  int       `gorm:"type:smallint;not null;column:semester_record_semester;uniqueIndex:uq_semester_record_student_semester" json:"semester_record_semester"`

	// Cohort student selama semester tsb (wajib saat create)
	SemesterRecordGroupID uuid.UUID `gorm:"type:uuid;not null;column:semester_record_group_id" json:"semester_record_group_id"`

	SemesterRecordPassed     bool       `gorm:"not null;default:false;column:semester_record_passed" json:"semester_record_passed"`
	SemesterRecordPromotedAt *time.Time `gorm:"type:timestamptz;column:semester_record_promoted_at" json:"semester_record_promoted_at,omitempty"`
	SemesterRecordPromotedBy *uuid.UUID `gorm:"type:uuid;column:semester_record_promoted_by" json:"semester_record_promoted_by,omitempty"`

	SemesterRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:semester_record_created_at;autoCreateTime" json:"semester_record_created_at"`
	SemesterRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:semester_record_updated_at;autoUpdateTime" json:"semester_record_updated_at"`

	SemesterRecordSubjects []SubjectRecordModel `gorm:"foreignKey:SubjectRecordSemesterRecordID;references:SemesterRecordID" json:"semester_record_subjects,omitempty"`
}

func (SemesterRecordModel) TableName() string { return "student_semester_records" }

// SubjectRecordModel: nilai agregat satu subject dalam satu semester.
// Kolom turunan (total/percentage/grade/passed) SELALU dihitung ulang
// dari main_result + weekly_results lewat Recompute, tidak pernah
// diedit manual.
type SubjectRecordModel struct {
	SubjectRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_record_id" json:"subject_record_id"`

	SubjectRecordSemesterRecordID uuid.UUID `gorm:"type:uuid;not null;column:subject_record_semester_record_id;uniqueIndex:uq_subject_record_semester_subject" json:"subject_record_semester_record_id"`
	SubjectRecordSubjectID        uuid.UUID `gorm:"type:uuid;not null;column:subject_record_subject_id;uniqueIndex:uq_subject_record_semester_subject" json:"subject_record_subject_id"`
	SubjectRecordTeacherID        uuid.UUID `gorm:"type:uuid;not null;column:subject_record_teacher_id" json:"subject_record_teacher_id"`

	SubjectRecordMainResult    datatypes.JSONType[*MainAssignmentResult]      `gorm:"type:jsonb;column:subject_record_main_result" json:"subject_record_main_result"`
	SubjectRecordWeeklyResults datatypes.JSONType[[]WeeklyAssignmentResult]   `gorm:"type:jsonb;column:subject_record_weekly_results" json:"subject_record_weekly_results"`

	SubjectRecordTotalMarks float64 `gorm:"type:numeric(8,2);not null;default:0;column:subject_record_total_marks" json:"subject_record_total_marks"`
	SubjectRecordMaxMarks   float64 `gorm:"type:numeric(8,2);not null;default:0;column:subject_record_max_marks" json:"subject_record_max_marks"`
	SubjectRecordPercentage float64 `gorm:"type:numeric(5,2);not null;default:0;column:subject_record_percentage" json:"subject_record_percentage"`
	SubjectRecordGrade      string  `gorm:"type:varchar(4);not null;default:'F';column:subject_record_grade" json:"subject_record_grade"`
	SubjectRecordPassed     bool    `gorm:"not null;default:false;column:subject_record_passed" json:"subject_record_passed"`

	SubjectRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:subject_record_created_at;autoCreateTime" json:"subject_record_created_at"`
	SubjectRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:subject_record_updated_at;autoUpdateTime" json:"subject_record_updated_at"`
}

func (SubjectRecordModel) TableName() string { return "student_subject_records" }

// UpsertWeeklyResult: replace jika assignment yang sama dinilai ulang,
// append jika belum ada. Regrade tidak menambah panjang list.
func UpsertWeeklyResult(list []WeeklyAssignmentResult, res WeeklyAssignmentResult) []WeeklyAssignmentResult {
	for i := range list {
		if list[i].AssignmentID == res.AssignmentID {
			list[i] = res
			return list
		}
	}
	return append(list, res)
}

// Recompute menghitung ulang kolom turunan dari seluruh entry
// (main + semua weekly) memakai skala yang sama dengan evaluator.
func (r *SubjectRecordModel) Recompute() {
	var total, max float64
	if main := r.SubjectRecordMainResult.Data(); main != nil {
		total += main.Marks
		max += main.MaxMarks
	}
	for _, w := range r.SubjectRecordWeeklyResults.Data() {
		total += w.Marks
		max += w.MaxMarks
	}

	pct := grading.Percentage(total, max)
	r.SubjectRecordTotalMarks = total
	r.SubjectRecordMaxMarks = max
	r.SubjectRecordPercentage = grading.Round2(pct)
	r.SubjectRecordGrade = grading.LetterGrade(pct)
	r.SubjectRecordPassed = pct >= grading.PassingPercentage
}
