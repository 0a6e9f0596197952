// Package api serves the JSON HTTP API and the websocket endpoints.
package api

import (
	"log/slog"

	"dabeli/config"
	"dabeli/internal/delivery"
	apimiddleware "dabeli/internal/delivery/api/middleware"
	"dabeli/internal/delivery/api/router"
	"dabeli/internal/delivery/api/validator"
	"dabeli/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer serves the API on http.port with h2c enabled.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.RouterParams)

	return delivery.NewHTTPServer(params.Lc, params.Cfg, params.Logger, "api", params.Cfg.HTTP.Port, e, true), nil
}

// NewEcho assembles middleware, error handling, validation and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(middleware.Base(logger, cfg)...)
	e.Use(echomiddleware.CORS())
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return e
}
