// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the directory role of a user.
type Role string

const (
	// RoleUser indicates a regular vehicle owner or requester.
	RoleUser Role = "user"
	// RoleServiceCenter indicates a service-centre account.
	RoleServiceCenter Role = "service_center"
	// RoleAdmin indicates the administrative role, which bypasses ownership checks.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleServiceCenter, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole normalizes a directory role string. Unknown values fall back to RoleUser
// so that a misconfigured directory row can never grant admin rights.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
