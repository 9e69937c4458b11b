// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents an authority tag carried in identity tokens.
type Role string

const (
	// RoleCustomer is held by accounts that book reservations and write reviews.
	RoleCustomer Role = "ROLE_CUSTOMER"
	// RolePartner is held by accounts that own stores.
	RolePartner Role = "ROLE_PARTNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RolePartner:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Is reports whether the set is exactly the single given role.
func (rs Roles) Is(role Role) bool {
	return len(rs) == 1 && rs[0] == role
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
