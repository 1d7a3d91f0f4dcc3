package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

func ValidUserRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleStaff}
}

// CanManageUsers covers registration and deactivation of accounts.
func (r UserRole) CanManageUsers() bool { return r == RoleAdmin }

// CanManageRooms covers adding rooms and overriding their status.
func (r UserRole) CanManageRooms() bool { return r == RoleAdmin }

// CanOperateDesk covers the booking ledger: reserve, check-in,
// check-out, cancel and marking bills paid.
func (r UserRole) CanOperateDesk() bool { return r == RoleAdmin || r == RoleStaff }

type User struct {
	ID                  int64      `json:"id"`
	Username            string     `json:"username" validate:"required"`
	PasswordHash        string     `json:"-"`
	Role                UserRole   `json:"role"`
	Active              bool       `json:"active"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
