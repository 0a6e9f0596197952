package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"dabeli/internal/infra/persistence/model"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	wrapped := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: model.CustomerPhoneIndex}, "insert")

	constraint, ok := isUniqueConstraintViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, model.CustomerPhoneIndex, constraint)

	constraint, ok = isUniqueConstraintViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, constraint)

	_, ok = isUniqueConstraintViolation(errors.New("connection reset"))
	assert.False(t, ok)
}

func TestOtherConstraintViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23505"}))
}
