package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"dabeli/config"
	"dabeli/internal/domain/lifecycle"
	"dabeli/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPServer runs an echo instance on a port and shuts it down with the fx app.
type HTTPServer struct {
	name   string
	addr   string
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// NewHTTPServer applies the configured timeouts to e and registers its graceful stop.
// With h2c set, cleartext HTTP/2 is accepted alongside HTTP/1.1.
func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, name string, port int, e *echo.Echo, h2c bool) *HTTPServer {
	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	srv := &HTTPServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	if h2c {
		srv.h2c = &http2.Server{IdleTimeout: timeouts.IdleTimeout}
	}

	lc.Append(fx.Hook{OnStop: srv.stop})

	return srv
}

// Serve blocks until the server stops. A graceful shutdown is not an error.
func (s *HTTPServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server failed", s.name)
	}

	return nil
}

func (s *HTTPServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
