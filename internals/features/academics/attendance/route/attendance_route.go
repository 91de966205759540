// file: internals/features/academics/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/attendance/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// AttendanceAdminRoutes: capture session absensi + rekap per student.
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := router.Group("/attendance", authMw.RequireRoles(constants.StaffRoles...))
	attendance.Post("/sessions", ctrl.CreateSession)
	attendance.Post("/sessions/:id/submit", ctrl.SubmitSession)
	attendance.Get("/students/:student_id/summary", ctrl.StudentSummary)
}
