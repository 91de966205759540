// file: internals/features/academics/groups/controller/group_controller.go
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

	groupDto "kampusku_backend/internals/features/academics/groups/dto"
	"kampusku_backend/internals/features/academics/groups/service"
)

type GroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	assigner  *service.AssignerService
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{
		DB:        db,
		Validator: validator.New(),
		assigner:  service.NewAssignerService(db),
	}
}

// 🟢 POST /api/a/groups
func (ctrl *GroupController) Create(c *fiber.Ctx) error {
	var req groupDto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	group := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat group")
	}
	return helper.JsonCreated(c, "Group berhasil dibuat", group)
}

// 🟢 GET /api/a/groups?semester=&page=&per_page=
func (ctrl *GroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var semester *int
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
		}
		semester = &v
	}

	groups, total, err := ctrl.assigner.ListGroups(c.Context(), semester, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data group")
	}
	return helper.JsonList(c, "Daftar group", groups, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/groups/auto-assign
// Bagi semua student active tanpa group ke group semester-nya (round-robin).
func (ctrl *GroupController) AutoAssign(c *fiber.Ctx) error {
	report, err := ctrl.assigner.AutoAssign(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Auto-assign gagal")
	}
	return helper.JsonOK(c, "Auto-assign selesai", report)
}

// 🟢 POST /api/a/groups/assign-student
func (ctrl *GroupController) AssignStudent(c *fiber.Ctx) error {
	var req groupDto.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	summary, err := ctrl.assigner.AssignStudent(c.Context(), req.StudentID, req.GroupID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		case errors.Is(err, service.ErrGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		case errors.Is(err, service.ErrGroupFull):
			return helper.JsonError(c, fiber.StatusConflict, "Group sudah penuh")
		case errors.Is(err, service.ErrStudentNotActive):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Student tidak berstatus active")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal assign student")
		}
	}
	return helper.JsonOK(c, "Student berhasil di-assign", summary)
}

// 🟢 DELETE /api/a/groups/members/:student_id
func (ctrl *GroupController) RemoveStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	if err := ctrl.assigner.RemoveStudent(c.Context(), studentID); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengeluarkan student")
	}
	return helper.JsonOK(c, "Student dikeluarkan dari group", nil)
}

// 🟢 POST /api/a/groups/:id/subject-teachers
func (ctrl *GroupController) AddSubjectTeacher(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req groupDto.AddSubjectTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	st, err := ctrl.assigner.AddSubjectTeacher(c.Context(), groupID, req.SubjectID, req.TeacherID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		case errors.Is(err, service.ErrSubjectTeacherExists):
			return helper.JsonError(c, fiber.StatusConflict, "Subject sudah punya teacher di group ini")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan teacher")
		}
	}
	return helper.JsonCreated(c, "Teacher berhasil ditautkan", st)
}
