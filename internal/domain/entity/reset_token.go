package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL is the hard lifetime of a password reset code.
const ResetTokenTTL = 3600 * time.Second

// MaxResetAttempts is the number of wrong codes after which a token is burned.
const MaxResetAttempts = 5

// ResetToken is the single live password reset code of a customer.
// CreatedAt and ExpiresAt are stamped by the database clock on store.
type ResetToken struct {
	ID         uuid.UUID
	CustomerID uuid.UUID // Unique: issuing a new token replaces the old one.
	TokenHash  string    // bcrypt hash of the six digit code.
	Attempts   int       // Wrong codes submitted against this token.
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// NewResetToken builds an unsaved token for the customer.
func NewResetToken(customerID uuid.UUID, tokenHash string) *ResetToken {
	return &ResetToken{
		CustomerID: customerID,
		TokenHash:  tokenHash,
	}
}

// IsExpired reports whether the token is no longer usable at now.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Exhausted reports whether the token has seen too many wrong codes.
func (t *ResetToken) Exhausted() bool {
	return t.Attempts >= MaxResetAttempts
}
