package postgres

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"
	"dabeli/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// upsertResetTokenSQL stamps both timestamps from the database clock so that
// expiry never depends on the application host's time.
const upsertResetTokenSQL = `INSERT INTO password_reset_tokens (customer_id, token_hash, attempts, created_at, expires_at)
VALUES (?, ?, 0, NOW(), NOW() + make_interval(secs => ?))
ON CONFLICT (customer_id) DO UPDATE SET
	token_hash = EXCLUDED.token_hash,
	attempts = 0,
	created_at = EXCLUDED.created_at,
	expires_at = EXCLUDED.expires_at
RETURNING id, customer_id, token_hash, attempts, created_at, expires_at`

// resetTokenRepository implements the repository.ResetTokenRepository interface.
type resetTokenRepository struct {
	q *query.Query
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{
		q: query.Use(db),
	}
}

// Replace upserts on customer_id and purges expired rows.
func (repo *resetTokenRepository) Replace(ctx context.Context, token *entity.ResetToken, ttl time.Duration) error {
	rt := repo.q.ResetTokenModel

	if _, err := rt.WithContext(ctx).
		Where(field.NewUnsafeFieldRaw("expires_at <= NOW()")).
		Delete(); err != nil {
		return errors.Wrap(err, "failed to purge expired reset tokens")
	}

	var tokenM model.ResetTokenModel
	if err := rt.WithContext(ctx).UnderlyingDB().
		Raw(upsertResetTokenSQL, token.CustomerID, token.TokenHash, ttl.Seconds()).
		Scan(&tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store reset token")
	}

	token.ID = tokenM.ID
	token.Attempts = tokenM.Attempts
	token.CreatedAt = tokenM.CreatedAt
	token.ExpiresAt = tokenM.ExpiresAt

	return nil
}

// FindLive returns the customer's token if the database clock says it has not
// expired and it still has attempts left. It reads from the primary.
func (repo *resetTokenRepository) FindLive(ctx context.Context, customerID uuid.UUID) (*entity.ResetToken, error) {
	rt := repo.q.ResetTokenModel

	tokenM, err := rt.WithContext(ctx).WriteDB().
		Where(
			rt.CustomerID.Eq(customerID),
			rt.Attempts.Lt(entity.MaxResetAttempts),
			field.NewUnsafeFieldRaw("expires_at > NOW()"),
		).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInvalidResetToken
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(tokenM), nil
}

// RecordFailedAttempt increments the token's attempt counter.
func (repo *resetTokenRepository) RecordFailedAttempt(ctx context.Context, tokenID uuid.UUID) (int, error) {
	rt := repo.q.ResetTokenModel

	info, err := rt.WithContext(ctx).
		Where(rt.ID.Eq(tokenID)).
		UpdateSimple(rt.Attempts.Add(1))
	if err != nil {
		return 0, errors.Wrap(err, "failed to record reset attempt")
	}
	if info.RowsAffected == 0 {
		return 0, domainerrors.ErrInvalidResetToken
	}

	tokenM, err := rt.WithContext(ctx).WriteDB().
		Select(rt.Attempts).
		Where(rt.ID.Eq(tokenID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domainerrors.ErrInvalidResetToken
		}

		return 0, errors.Wrap(err, "failed to read reset attempts")
	}

	return tokenM.Attempts, nil
}

// DeleteByCustomer removes the customer's token, if any.
func (repo *resetTokenRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	rt := repo.q.ResetTokenModel

	if _, err := rt.WithContext(ctx).
		Where(rt.CustomerID.Eq(customerID)).
		Delete(); err != nil {
		return errors.Wrap(err, "failed to delete reset token")
	}

	return nil
}

func toResetTokenDomain(data *model.ResetTokenModel) *entity.ResetToken {
	return &entity.ResetToken{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		TokenHash:  data.TokenHash,
		Attempts:   data.Attempts,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
	}
}
