// file: internals/features/academics/promotion/dto/promotion_dto.go
package dto

import "github.com/google/uuid"

/* =========================
   Requests
========================= */

type ManualPromotionRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1"`
	Semester   int         `json:"semester" validate:"required,min=1,max=8"`
	Reason     string      `json:"reason" validate:"required,max=255"`
}

/* =========================
   Responses
========================= */

// StudentPromotionResult: satu baris detail per student dalam report
// batch — cukup untuk rekonsiliasi siapa lolos/gagal/butuh review.
type StudentPromotionResult struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Outcome      string    `json:"outcome"` // promoted | graduated | failed | manual_review_required
	Reason       string    `json:"reason,omitempty"`
	FromSemester int       `json:"from_semester"`
	ToSemester   *int      `json:"to_semester,omitempty"`
	Attendance   float64   `json:"attendance"`
}

type PromotionReport struct {
	Semester                int                      `json:"semester"`
	Total                   int                      `json:"total"`
	Promoted                int                      `json:"promoted"`
	Failed                  int                      `json:"failed"`
	Graduated               int                      `json:"graduated"`
	ManualPromotionRequired int                      `json:"manual_promotion_required"`
	ManualPromotionList     []uuid.UUID              `json:"manual_promotion_list"`
	Results                 []StudentPromotionResult `json:"results"`
}

type ManualPromotionEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason,omitempty"`
}

type ManualPromotionResult struct {
	Promoted []ManualPromotionEntry `json:"promoted"`
	Failed   []ManualPromotionEntry `json:"failed"`
}
