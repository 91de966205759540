// file: internals/features/academics/promotion/route/promotion_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/promotion/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// PromotionAdminRoutes: promosi batch & manual khusus admin; report
// (dry run) boleh staff.
func PromotionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPromotionController(db)

	promotions := router.Group("/promotions")
	promotions.Get("/semesters/:semester/report", authMw.RequireRoles(constants.StaffRoles...), ctrl.Report)

	admin := promotions.Group("", authMw.RequireRoles(constants.AdminAndAbove...))
	admin.Post("/semesters/:semester/run", ctrl.RunSemester)
	admin.Post("/manual", ctrl.PromoteManually)
}
