// file: internals/features/academics/groups/route/group_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/groups/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// GroupAdminRoutes: manajemen cohort. Mutasi membership & batch
// auto-assign khusus admin; listing boleh staff.
func GroupAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGroupController(db)

	groups := router.Group("/groups")
	groups.Get("/", authMw.RequireRoles(constants.StaffRoles...), ctrl.List)

	admin := groups.Group("", authMw.RequireRoles(constants.AdminAndAbove...))
	admin.Post("/", ctrl.Create)
	admin.Post("/auto-assign", ctrl.AutoAssign)
	admin.Post("/assign-student", ctrl.AssignStudent)
	admin.Delete("/members/:student_id", ctrl.RemoveStudent)
	admin.Post("/:id/subject-teachers", ctrl.AddSubjectTeacher)
}
