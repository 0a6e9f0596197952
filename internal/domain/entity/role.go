// Package entity contains the core business objects of the project.
package entity

// Role is the identity claim carried by a session token.
type Role string

const (
	// RoleAdmin is staff operating the restaurant.
	RoleAdmin Role = "admin"
	// RoleCustomer is a registered customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}
