package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	EmployeeID   *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// CanManageRecords reports whether the role may create or correct attendance
// records and access org-wide views. This mirrors the admin/HR/manager split
// of the web backoffice.
func (r Role) CanManageRecords() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleManager
}

// CanManageMasterData reports whether the role may edit employees, shifts and
// work sites.
func (r Role) CanManageMasterData() bool {
	return r == RoleAdmin || r == RoleHR
}
