// Package context carries request-scoped values from the delivery layer down to
// usecases and infrastructure: the request id, the request logger and the
// authenticated actor.
package context

import (
	"context"
	"log/slog"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyActor is the key for the authenticated caller.
	KeyActor ContextKey = "actor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 64
)

// Actor is the authenticated caller of a request.
type Actor struct {
	Subject uuid.UUID
	Role    entity.Role
}

// NormalizeRequestID keeps a client supplied id when it is short and made of
// [A-Za-z0-9._-], otherwise it mints a new one.
func NormalizeRequestID(raw string) string {
	if raw != "" && len(raw) <= maxRequestIDLength && isTokenSafe(raw) {
		return raw
	}

	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

func isTokenSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}

	return true
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithActor stores the caller and tags the request logger, if any, with it.
func WithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, KeyActor, actor)

	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("subject", actor.Subject.String()),
			slog.String("role", actor.Role.String()),
		))
	}

	return ctx
}

// GetActor returns the authenticated caller, if the request carried one.
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(KeyActor).(Actor)

	return actor, ok
}
