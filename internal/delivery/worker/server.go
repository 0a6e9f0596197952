// Package worker serves the Pub/Sub push endpoint that turns lifecycle events into mobile pushes.
package worker

import (
	"log/slog"
	"net/http"

	"dabeli/config"
	"dabeli/internal/delivery"
	"dabeli/internal/delivery/middleware"
	"dabeli/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer serves the push endpoint on worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler)

	return delivery.NewHTTPServer(params.Lc, params.Cfg, params.Logger, "worker", params.Cfg.Worker.Port, e, false), nil
}

// NewEcho wires the health probe and POST /push.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Base(logger, cfg)...)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}
