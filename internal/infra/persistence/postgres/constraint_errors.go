package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueConstraintViolation reports a duplicate key, returning the violated constraint when known.
func isUniqueConstraintViolation(err error) (string, bool) {
	if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
		return constraint, true
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
		return true
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)

	return code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if code, _ := pgErrorCode(err); code == pgCheckViolation {
		return true
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
