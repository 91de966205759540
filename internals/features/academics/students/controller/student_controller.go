// file: internals/features/academics/students/controller/student_controller.go
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

	studentDto "kampusku_backend/internals/features/academics/students/dto"
	"kampusku_backend/internals/features/academics/students/model"
	"kampusku_backend/internals/features/academics/students/service"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	service   *service.StudentService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
		service:   service.NewStudentService(db),
	}
}

// 🟢 POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req studentDto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		if strings.Contains(err.Error(), "uq_student_code") {
			return helper.JsonError(c, fiber.StatusConflict, "Student code sudah terpakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat student")
	}
	return helper.JsonCreated(c, "Student berhasil dibuat", student)
}

// 🟢 GET /api/a/students?semester=&status=&group_id=&page=&per_page=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var filter service.StudentListFilter
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil || semester < model.MinSemester || semester > model.MaxSemester {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
		}
		filter.Semester = &semester
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := model.StudentStatus(raw)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid")
		}
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("group_id")); raw != "" {
		gid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		filter.GroupID = &gid
	}

	students, total, err := ctrl.service.List(c.Context(), filter, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.JsonList(c, "Daftar student", students, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	student, err := ctrl.service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}
	return helper.JsonOK(c, "Detail student", student)
}

// 🟢 GET /api/a/students/:id/history
// Seluruh semester record student berikut subject record-nya, urut semester.
func (ctrl *StudentController) AcademicHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	records, err := ctrl.service.AcademicHistory(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil academic history")
	}
	return helper.JsonOK(c, "Academic history", records)
}
