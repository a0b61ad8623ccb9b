package constants

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

var AllowedRoles = []string{RoleStudent, RoleTeacher, RoleAdmin}
