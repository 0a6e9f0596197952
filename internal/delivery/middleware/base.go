// Package middleware holds the echo middleware shared by the API and the push worker.
package middleware

import (
	"log/slog"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Base returns the chain every server starts with: panic recovery, request id, access log.
func Base(logger *slog.Logger, cfg *config.Config) []echo.MiddlewareFunc {
	recoverer := echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, logger).ErrorContext(ctx, "Recovered from panic",
				slog.Any("error", err),
				slog.String("stack", string(stack)),
			)

			return err
		},
	})

	return []echo.MiddlewareFunc{recoverer, RequestID(logger), AccessLog(logger, cfg)}
}
