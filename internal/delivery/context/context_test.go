package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "req-1.a_b", NormalizeRequestID("req-1.a_b"))

	for _, raw := range []string{"", "has space", "line\nbreak", strings.Repeat("x", maxRequestIDLength+1)} {
		got := NormalizeRequestID(raw)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "raw %q should be replaced by a uuid, got %q", raw, got)
	}
}

func TestWithActor_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	subject := uuid.New()

	ctx := WithLogger(context.Background(), base)
	ctx = WithActor(ctx, Actor{Subject: subject, Role: entity.RoleCustomer})

	actor, ok := GetActor(ctx)
	require.True(t, ok)
	assert.Equal(t, subject, actor.Subject)

	GetLoggerOrDefault(ctx, nil).Info("placed")
	assert.Contains(t, buf.String(), "subject="+subject.String())
	assert.Contains(t, buf.String(), "role=customer")
}

func TestWithActor_WithoutLogger(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	ctx := WithActor(context.Background(), Actor{Subject: uuid.New(), Role: entity.RoleAdmin})

	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}
