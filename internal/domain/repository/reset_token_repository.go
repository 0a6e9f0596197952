package repository

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// ResetTokenRepository stores at most one live reset token per customer.
// Expiry is evaluated by the database clock.
type ResetTokenRepository interface {
	// Replace atomically swaps any previous token of the customer for this one
	// and purges expired tokens of all customers. The token expires ttl after
	// the database's NOW(); ID, CreatedAt and ExpiresAt are filled on return.
	Replace(ctx context.Context, token *entity.ResetToken, ttl time.Duration) error

	// FindLive returns the customer's token if it has not expired yet.
	FindLive(ctx context.Context, customerID uuid.UUID) (*entity.ResetToken, error)

	// RecordFailedAttempt bumps the wrong-code counter and returns its new value.
	RecordFailedAttempt(ctx context.Context, tokenID uuid.UUID) (int, error)

	// DeleteByCustomer removes the customer's token, if any.
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error
}
