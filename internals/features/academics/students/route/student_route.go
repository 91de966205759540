// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/students/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// StudentAdminRoutes: CRUD + academic history, staff only.
func StudentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := router.Group("/students", authMw.RequireRoles(constants.StaffRoles...))
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Get("/:id/history", ctrl.AcademicHistory)
}
