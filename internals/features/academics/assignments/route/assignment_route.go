// file: internals/features/academics/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/assignments/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// AssignmentAdminRoutes: katalog assignment + submission + grading.
func AssignmentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	assignments := router.Group("/assignments", authMw.RequireRoles(constants.StaffRoles...))
	assignments.Post("/", ctrl.Create)
	assignments.Get("/", ctrl.List)

	submissions := router.Group("/submissions")
	submissions.Post("/", ctrl.SubmitWork) // student mengumpulkan
	submissions.Post("/:id/grade", authMw.RequireRoles(constants.StaffRoles...), ctrl.GradeSubmission)
}
