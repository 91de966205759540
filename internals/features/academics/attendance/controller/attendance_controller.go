// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kampusku_backend/internals/helpers"

	attDto "kampusku_backend/internals/features/academics/attendance/dto"
	"kampusku_backend/internals/features/academics/attendance/model"
	"kampusku_backend/internals/features/academics/attendance/service"
	studentModel "kampusku_backend/internals/features/academics/students/model"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	service   *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
		service:   service.NewAttendanceService(db),
	}
}

// 🟢 POST /api/a/attendance/sessions
func (ctrl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	var req attDto.CreateAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	for _, e := range req.Entries {
		if !model.AttendanceStatus(e.Status).Valid() {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Status kehadiran tidak valid: "+e.Status)
		}
	}

	session := req.ToModel()
	if err := ctrl.service.CreateSession(c.Context(), &session); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan attendance session")
	}
	return helper.JsonCreated(c, "Attendance session tersimpan", session)
}

// 🟢 POST /api/a/attendance/sessions/:id/submit
// Finalisasi session: hanya session submitted yang masuk rekap.
func (ctrl *AttendanceController) SubmitSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	session, err := ctrl.service.SubmitSession(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal submit attendance session")
	}
	return helper.JsonOK(c, "Attendance session di-submit", session)
}

// 🟢 GET /api/a/attendance/students/:student_id/summary?semester=&subject_id=
func (ctrl *AttendanceController) StudentSummary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	semester, err := strconv.Atoi(strings.TrimSpace(c.Query("semester")))
	if err != nil || semester < studentModel.MinSemester || semester > studentModel.MaxSemester {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
	}

	var subjectID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		subjectID = &sid
	}

	summary := ctrl.service.StudentSummary(c.Context(), studentID, semester, subjectID)
	return helper.JsonOK(c, "Rekap kehadiran", summary)
}
