package model

import "strings"

// Staff roles as reported by the upstream API.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin represents an authenticated staff identity.
type Admin struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Name returns the display name derived from the first and last name.
// A missing part never leaves a stray separator behind.
func (a Admin) Name() string {
	return strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
}

// IsSuperAdmin reports whether this identity may manage other admin accounts.
func (a Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// AdminAccount represents a managed staff account as listed by the
// admin-management endpoints. It carries more fields than the session
// identity but is otherwise the same upstream record.
type AdminAccount struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
