// file: internals/features/academics/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attDto "kampusku_backend/internals/features/academics/attendance/dto"
	"kampusku_backend/internals/features/academics/attendance/model"
)

var ErrSessionNotFound = errors.New("attendance session tidak ditemukan")

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

/* =========================
   Aggregation (pure core)
========================= */

// AttendanceLabel: banding kualitatif untuk display.
func AttendanceLabel(percentage float64) string {
	switch {
	case percentage >= 75:
		return "excellent"
	case percentage >= 65:
		return "good"
	case percentage >= 50:
		return "satisfactory"
	default:
		return "poor"
	}
}

// summarize menghitung rekap dari daftar status. "late" tetap dihitung
// hadir untuk persentase, tapi dilaporkan terpisah. totalClasses == 0
// menghasilkan 0, bukan NaN — ketiadaan data tidak boleh dibaca lulus.
func summarize(statuses []model.AttendanceStatus) attDto.AttendanceSummary {
	s := attDto.AttendanceSummary{TotalClasses: len(statuses)}
	for _, st := range statuses {
		switch st {
		case model.AttendanceStatusPresent:
			s.Present++
		case model.AttendanceStatusAbsent:
			s.Absent++
		case model.AttendanceStatusLate:
			s.Late++
		case model.AttendanceStatusExcused:
			s.Excused++
		}
	}
	if s.TotalClasses > 0 {
		s.Percentage = math.Round(float64(s.Present+s.Late) / float64(s.TotalClasses) * 100)
	}
	s.Label = AttendanceLabel(s.Percentage)
	return s
}

// StudentSummary merekap kehadiran student pada satu semester, opsional
// per subject. Hanya session yang sudah di-submit yang dihitung.
//
// Kegagalan lookup sengaja di-degrade ke summary nol (bukan error):
// absennya infrastruktur absensi tidak boleh memblokir grading maupun
// promosi. Error tetap dicatat di log.
func (svc *AttendanceService) StudentSummary(ctx context.Context, studentID uuid.UUID, semester int, subjectID *uuid.UUID) attDto.AttendanceSummary {
	q := svc.DB.WithContext(ctx).
		Table("attendance_entries").
		Select("attendance_entries.attendance_entry_status").
		Joins("JOIN attendance_sessions ON attendance_sessions.attendance_session_id = attendance_entries.attendance_entry_session_id").
		Where("attendance_entries.attendance_entry_student_id = ?", studentID).
		Where("attendance_sessions.attendance_session_semester = ?", semester).
		Where("attendance_sessions.attendance_session_is_submitted = ?", true).
		Where("attendance_sessions.attendance_session_deleted_at IS NULL")
	if subjectID != nil {
		q = q.Where("attendance_sessions.attendance_session_subject_id = ?", *subjectID)
	}

	var statuses []model.AttendanceStatus
	if err := q.Scan(&statuses).Error; err != nil {
		log.Printf("[AttendanceService] lookup gagal student=%s semester=%d: %v (degrade ke summary nol)", studentID, semester, err)
		return summarize(nil)
	}
	return summarize(statuses)
}

/* =========================
   Session capture
========================= */

func (svc *AttendanceService) CreateSession(ctx context.Context, session *model.AttendanceSessionModel) error {
	return svc.DB.WithContext(ctx).Create(session).Error
}

// SubmitSession menandai session final sehingga masuk hitungan rekap.
func (svc *AttendanceService) SubmitSession(ctx context.Context, sessionID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var session model.AttendanceSessionModel
	err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, "attendance_session_id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		session.AttendanceSessionIsSubmitted = true
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}
