// ABOUTME: Closed role enumeration with a normalizing parse at the boundary
// ABOUTME: Replaces free-form case-insensitive role strings with typed values

package auth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role string matches no known role.
var ErrUnknownRole = errors.New("unknown role")

// Role identifies what an authenticated operator may do.
type Role string

const (
	// RoleAny is the zero value and matches any authenticated role.
	RoleAny Role = ""

	// RoleAdmin manages industries, companies and the raw-lead pool.
	RoleAdmin Role = "Admin"

	// RoleLG is the lead-generator operator role.
	RoleLG Role = "LG"
)

// ValidRoles lists the assignable roles.
var ValidRoles = []Role{RoleAdmin, RoleLG}

// ParseRole normalizes a backend role string into a Role. Matching is
// case-insensitive; this is the only place role strings are compared
// loosely.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "lg":
		return RoleLG, nil
	default:
		return RoleAny, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string {
	return string(r)
}
