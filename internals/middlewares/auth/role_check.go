package auth

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

// RequireRoles menolak request jika roles_global di token tidak
// memuat salah satu role yang diizinkan.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := helperAuth.GetRolesFromToken(c)
		if !constants.HasRole(roles, allowed...) {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}
