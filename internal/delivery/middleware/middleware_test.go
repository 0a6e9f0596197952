package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	domainerrors "dabeli/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServer(buf *bytes.Buffer, handler echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(RequestID(logger), AccessLog(logger, cfg))
	e.GET("/health", handler)
	e.GET("/orders", handler)

	return e
}

func TestRequestID_ReusesSafeClientID(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	e := newTestServer(&buf, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-42", seen)
	assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=client-42")
}

func TestRequestID_ReplacesUnsafeClientID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "<script>")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "<script>", got)
}

func TestLogger_UsesErrorStatusAndSkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, func(c echo.Context) error {
		if c.Path() == "/health" {
			return c.NoContent(http.StatusOK)
		}

		return domainerrors.ErrOrderNotFound
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(domainerrors.Invalid("status", "Invalid order status")))
	assert.Equal(t, http.StatusMethodNotAllowed, statusFor(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
