// Package models holds the staff roster domain types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the console permission level of a staff user.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleNormalUser Role = "NormalUser"
)

// Valid reports whether the role is one the console recognizes.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleNormalUser:
		return true
	}
	return false
}

// AtLeast reports whether the role grants the permissions of other.
// SuperAdmin > Admin > NormalUser.
func (r Role) AtLeast(other Role) bool {
	return rank(r) >= rank(other)
}

func rank(r Role) int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleNormalUser:
		return 1
	}
	return 0
}

// User is a staff member with console access.
type User struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	IsLoggedIn bool       `json:"is_logged_in"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	LastDevice string     `json:"last_device,omitempty"`
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	c := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}

// IdPUser is a directory entry returned by the identity provider. Entries
// become Users once an operator grants them a role.
type IdPUser struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UserFilter narrows a roster listing. Empty fields match everything.
type UserFilter struct {
	Role Role
	Term string
}
