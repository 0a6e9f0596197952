package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/delivery/worker/handler"
	mockUsecase "dabeli/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081}}

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:          cfg,
		Logger:          logger,
		NotificationSvc: mockUsecase.NewMockNotificationUsecase(t),
	})

	srv, err := NewServer(ServerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger, PushHandler: pushHandler})
	assert.NoError(t, err)
	assert.NotNil(t, srv)

	return NewEcho(cfg, logger, pushHandler)
}

func TestWorker_Routes(t *testing.T) {
	e := newTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
