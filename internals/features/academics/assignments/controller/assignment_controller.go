// file: internals/features/academics/assignments/controller/assignment_controller.go
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
	helperAuth "kampusku_backend/internals/helpers/auth"

	assignDto "kampusku_backend/internals/features/academics/assignments/dto"
	"kampusku_backend/internals/features/academics/assignments/service"
	studentService "kampusku_backend/internals/features/academics/students/service"
)

type AssignmentController struct {
	DB         *gorm.DB
	Validator  *validator.Validate
	assignment *service.AssignmentService
	grading    *service.GradingService
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:         db,
		Validator:  validator.New(),
		assignment: service.NewAssignmentService(db),
		grading:    service.NewGradingService(db),
	}
}

// 🟢 POST /api/a/assignments
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var req assignDto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	asg := req.ToModel()
	if err := ctrl.assignment.Create(c.Context(), &asg); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", asg)
}

// 🟢 GET /api/a/assignments?semester=&page=&per_page=
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var semester *int
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
		}
		semester = &v
	}

	items, total, err := ctrl.assignment.List(c.Context(), semester, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	return helper.JsonList(c, "Daftar assignment", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/submissions
func (ctrl *AssignmentController) SubmitWork(c *fiber.Ctx) error {
	var req assignDto.SubmitWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sub, err := ctrl.assignment.SubmitWork(c.Context(), req.AssignmentID, req.StudentID, req.GroupID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		case errors.Is(err, service.ErrSubmissionExists):
			return helper.JsonError(c, fiber.StatusConflict, "Submission untuk assignment ini sudah ada")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan submission")
		}
	}
	return helper.JsonCreated(c, "Submission tersimpan", sub)
}

// 🟢 POST /api/a/submissions/:id/grade
// Menilai submission DAN meng-update academic history student dalam satu
// transaksi. Respons memuat submission + subject record hasil recompute.
func (ctrl *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req assignDto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	gradedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	resp, err := ctrl.grading.GradeSubmission(c.Context(), submissionID, req.Marks, req.Feedback, gradedBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		case errors.Is(err, service.ErrAssignmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		case errors.Is(err, service.ErrMarksOutOfRange):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Marks di luar rentang 0..max_marks")
		case errors.Is(err, studentService.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		case errors.Is(err, studentService.ErrMissingGroupContext):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Group context tidak tersedia")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menilai submission")
		}
	}
	return helper.JsonOK(c, "Submission berhasil dinilai", resp)
}
