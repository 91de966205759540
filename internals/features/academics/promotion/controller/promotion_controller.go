// file: internals/features/academics/promotion/controller/promotion_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "kampusku_backend/internals/helpers"
	helperAuth "kampusku_backend/internals/helpers/auth"

	promoDto "kampusku_backend/internals/features/academics/promotion/dto"
	"kampusku_backend/internals/features/academics/promotion/service"
)

type PromotionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	service   *service.PromotionService
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{
		DB:        db,
		Validator: validator.New(),
		service:   service.NewPromotionService(db),
	}
}

func parseSemesterParam(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Params("semester")))
}

// 🟢 POST /api/a/promotions/semesters/:semester/run
// Jalankan promosi batch: auto-promote, fail, graduate; kandidat
// manual review hanya dilaporkan, tidak dimutasi.
func (ctrl *PromotionController) RunSemester(c *fiber.Ctx) error {
	semester, err := parseSemesterParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
	}

	promotedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	report, err := ctrl.service.PromoteSemester(c.Context(), semester, promotedBy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSemester) {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester di luar rentang 1..8")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Promosi batch gagal")
	}
	return helper.JsonOK(c, "Promosi batch selesai", report)
}

// 🟢 GET /api/a/promotions/semesters/:semester/report
// Dry run: klasifikasi yang sama tanpa mutasi apa pun.
func (ctrl *PromotionController) Report(c *fiber.Ctx) error {
	semester, err := parseSemesterParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester tidak valid")
	}

	report, err := ctrl.service.Report(c.Context(), semester)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSemester) {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester di luar rentang 1..8")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat report")
	}
	return helper.JsonOK(c, "Promotion report", report)
}

// 🟢 POST /api/a/promotions/manual
// Promosi manual hasil review: hanya kelulusan main assignment yang
// dicek ulang, kehadiran tidak.
func (ctrl *PromotionController) PromoteManually(c *fiber.Ctx) error {
	var req promoDto.ManualPromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	promotedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	result, err := ctrl.service.PromoteManually(c.Context(), req, promotedBy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSemester) {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester di luar rentang 1..8")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Promosi manual gagal")
	}
	return helper.JsonOK(c, "Promosi manual selesai", result)
}
