// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the marketplace role a user acts in.
type Role string

const (
	// RoleCustomer indicates a customer who posts jobs and accepts bids.
	RoleCustomer Role = "customer"
	// RoleProvider indicates a service provider who bids on jobs.
	RoleProvider Role = "provider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider:
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
