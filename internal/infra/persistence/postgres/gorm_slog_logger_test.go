package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_LogsFailedQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_PrefersRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM slow query")
	assert.Contains(t, scoped.String(), "req-1")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ConstraintViolationIsWarning(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: "23505"})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "GORM query failed")
}

func TestRedactSQL(t *testing.T) {
	insert := `INSERT INTO "customers" ("name","phone","password_hash") VALUES ('Asha','9876543210','$2a$12$abc''def')`
	assert.Equal(t,
		`INSERT INTO "customers" ("name","phone","password_hash") VALUES ('***','***','***')`,
		redactSQL(insert),
	)

	plain := `SELECT * FROM "orders" WHERE customer_phone = '9876543210'`
	assert.Equal(t, plain, redactSQL(plain))
}
