package constants

// Role global yang dikenal sistem akademik.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// AdminAndAbove: role yang boleh memicu operasi batch akademik
// (promosi semester, auto-assign cohort).
var AdminAndAbove = []string{RoleAdmin}

// StaffRoles: role yang boleh menilai submission & submit absensi.
var StaffRoles = []string{RoleAdmin, RoleTeacher}

func HasRole(roles []string, allowed ...string) bool {
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}
