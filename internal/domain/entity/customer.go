// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted at registration and reset.
const MinPasswordLength = 6

// Customer is a registered account. Phone is the login key.
type Customer struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"` // Unique among non-null values.
	PasswordHash string     `json:"-"`
	Addresses    []*Address `json:"addresses"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NormalizeEmail trims an optional email and maps blank to nil.
func NormalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}

	trimmed := strings.ToLower(strings.TrimSpace(*email))
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// Validate checks the fields a customer must always carry.
func (c *Customer) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(strings.TrimSpace(c.Name) != "", "name", "Name is required")
	fields.Check(strings.TrimSpace(c.Phone) != "", "phone", "Phone number is required")

	return fields.Err()
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(field, password string) error {
	if len(password) < MinPasswordLength {
		return domainerrors.Invalid(field, "Password must be at least 6 characters")
	}

	return nil
}
