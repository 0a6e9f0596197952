package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// quietPaths are polled by probes and never access-logged.
var quietPaths = map[string]struct{}{
	"/health": {},
}

type accessLogger struct {
	logger *slog.Logger
}

// AccessLog writes one line per request when env.debug is on.
func AccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	m := &accessLogger{logger: logger}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Env.Debug {
				return next(c)
			}
			if _, quiet := quietPaths[c.Request().URL.Path]; quiet {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			m.logRequest(c, start, err)

			return err
		}
	}
}

func (m *accessLogger) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil && !res.Committed {
		status = statusFor(err)
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	// The request logger already carries request_id, and subject/role once authenticated.
	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP request", fields...)
}

// statusFor predicts the status the error handler will render, since the access
// log is written before it runs.
func statusFor(err error) int {
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
