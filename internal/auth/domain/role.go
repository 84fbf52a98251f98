package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of role names an account can hold. Role claims in
// access tokens are always mapped through this type, never compared as free
// text.
type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleStaff, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RolesToClaim serializes a role set into the comma-joined claim format.
// Unknown roles are rejected so a bad role can never be minted into a token.
func RolesToClaim(roles []Role) (string, error) {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if _, err := ParseRole(string(r)); err != nil {
			return "", err
		}
		names = append(names, string(r))
	}
	return strings.Join(names, ","), nil
}

// RolesFromClaim parses a comma-joined roles claim back into the enum,
// failing on any name outside the closed set.
func RolesFromClaim(claim string) ([]Role, error) {
	if claim == "" {
		return nil, nil
	}
	parts := strings.Split(claim, ",")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		r, err := ParseRole(p)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, nil
}
