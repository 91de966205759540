// file: internals/helpers/auth/token.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys untuk fiber locals (diisi oleh middleware AuthJWT)
const (
	LocUserID      = "user_id"
	LocRolesGlobal = "roles_global"
	LocTeacherID   = "teacher_id"
	LocStudentID   = "student_id"
)

var ErrNoUserID = errors.New("user_id tidak ditemukan di token")

// GetUserIDFromToken mengambil identitas aktor dari locals yang
// dihidrasi middleware AuthJWT. Dipakai untuk audit stamp
// (graded_by, promoted_by).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, ErrNoUserID
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, ErrNoUserID
	}
	return id, nil
}

// GetRolesFromToken mengembalikan roles_global dari locals (jika ada).
func GetRolesFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRolesGlobal).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
