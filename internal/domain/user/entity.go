package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether s is a role the platform issues tokens for.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account: a customer placing orders, a driver running
// trips, or an admin managing the catalog.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	FullName       string
	PhoneNumber    *string
	Role           Role
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
