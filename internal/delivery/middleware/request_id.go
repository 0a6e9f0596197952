package middleware

import (
	"log/slog"

	deliverycontext "dabeli/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestID reuses a well-formed X-Request-Id from the caller or mints one,
// echoes it back, and puts it on the request context together with a logger
// tagged with it.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := deliverycontext.NormalizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

			ctx := deliverycontext.WithRequestID(req.Context(), id)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", id)))
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
