// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/middlewares"
	authMw "kampusku_backend/internals/middlewares/auth"

	assignmentRoute "kampusku_backend/internals/features/academics/assignments/route"
	attendanceRoute "kampusku_backend/internals/features/academics/attendance/route"
	groupRoute "kampusku_backend/internals/features/academics/groups/route"
	promotionRoute "kampusku_backend/internals/features/academics/promotion/route"
	studentRoute "kampusku_backend/internals/features/academics/students/route"
)

// SetupRoutes memasang seluruh route akademik.
//
// /api/a : endpoint ber-auth (JWT) untuk admin/teacher/student.
// Batch endpoint (auto-assign, promotion run) dapat limiter lebih ketat.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	protected := api.Group("/a", authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	// Limiter ketat khusus operasi batch yang berat.
	protected.Use("/groups/auto-assign", middlewares.BatchRateLimiter())
	protected.Use("/promotions/semesters", middlewares.BatchRateLimiter())

	studentRoute.StudentAdminRoutes(protected, db)
	groupRoute.GroupAdminRoutes(protected, db)
	assignmentRoute.AssignmentAdminRoutes(protected, db)
	attendanceRoute.AttendanceAdminRoutes(protected, db)
	promotionRoute.PromotionAdminRoutes(protected, db)
}
