package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dabeli/config"
	"dabeli/internal/domain/constants"
	"dabeli/internal/domain/service"
	"dabeli/internal/infra/pubsub"
	mockUsecase "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notificationSvc := mockUsecase.NewMockNotificationUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func pushRequest(body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// encodedEvent builds the body exactly as the local publisher sends it.
func encodedEvent(t *testing.T, event *service.LifecycleEvent) []byte {
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.LifecycleEvent{
		RequestID:   "req-42",
		Name:        service.EventOrderUpdate,
		CustomerID:  uuid.New(),
		ReferenceID: uuid.New(),
		Status:      "Ready",
	}
	matchesEvent := mock.MatchedBy(func(got *service.LifecycleEvent) bool {
		return got.Name == event.Name && got.CustomerID == event.CustomerID && got.ReferenceID == event.ReferenceID
	})

	t.Run("delivered", func(t *testing.T) {
		h, notificationSvc := newTestPushHandler(t, &config.Config{})
		notificationSvc.EXPECT().
			PushLifecycleEvent(mock.Anything, matchesEvent).
			Return(&usecase.PushSummary{Devices: 2, Sent: 1, Failed: 1}, nil)

		c, rec := pushRequest(encodedEvent(t, event))
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure is redelivered", func(t *testing.T) {
		h, notificationSvc := newTestPushHandler(t, &config.Config{})
		notificationSvc.EXPECT().
			PushLifecycleEvent(mock.Anything, matchesEvent).
			Return(nil, errors.New("db down"))

		c, rec := pushRequest(encodedEvent(t, event))
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	notBase64 := PubSubMessage{}
	notBase64.Message.Data = "%%% not base64 %%%"
	notEvent := PubSubMessage{}
	notEvent.Message.Data = "bm90IGpzb24=" // "not json"

	tests := []struct {
		name string
		body any
	}{
		{name: "envelope", body: "{"},
		{name: "data encoding", body: notBase64},
		{name: "event payload", body: notEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			body, ok := tt.body.(string)
			if !ok {
				raw, err := json.Marshal(tt.body)
				require.NoError(t, err)
				body = string(raw)
			}

			c, rec := pushRequest([]byte(body))
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestNewPushHandler_VerifiesOnlyCloudPushInProduction(t *testing.T) {
	google := &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}
	local := &config.PubSubConfig{Provider: constants.PubSubProviderLocal}

	prod := &config.Config{PubSub: google}
	prod.Env.Env = config.EnvProduction
	h, _ := newTestPushHandler(t, prod)
	assert.NotNil(t, h.verifyToken)

	dev := &config.Config{PubSub: google}
	h, _ = newTestPushHandler(t, dev)
	assert.Nil(t, h.verifyToken)

	prodLocal := &config.Config{PubSub: local}
	prodLocal.Env.Env = config.EnvProduction
	h, _ = newTestPushHandler(t, prodLocal)
	assert.Nil(t, h.verifyToken)
}

func TestPushHandler_HandlePush_RejectedToken(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	h.verifyToken = func(*http.Request) error { return errors.New("push request carries no bearer token") }

	c, rec := pushRequest(encodedEvent(t, &service.LifecycleEvent{Name: service.EventOrderUpdate}))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushTokenVerifier(t *testing.T) {
	const pushAccount = "push@dabeli.iam.gserviceaccount.com"

	validPayload := func() *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": pushAccount, "email_verified": true},
		}
	}

	tests := []struct {
		name      string
		header    string
		audience  string
		payload   func() *idtoken.Payload
		validErr  error
		wantAud   string
		wantError bool
	}{
		{name: "valid with request audience", header: "Bearer tok", payload: validPayload, wantAud: "http://worker.local/push"},
		{name: "valid with configured audience", header: "Bearer tok", audience: "https://push.dabeli.app/push", payload: validPayload, wantAud: "https://push.dabeli.app/push"},
		{name: "missing header", wantError: true},
		{name: "basic auth", header: "Basic abc", wantError: true},
		{name: "signature rejected", header: "Bearer tok", validErr: errors.New("expired"), wantError: true},
		{
			name: "foreign issuer", header: "Bearer tok", wantError: true,
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Issuer = "https://evil.example"

				return p
			},
		},
		{
			name: "other service account", header: "Bearer tok", wantError: true,
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Claims["email"] = "someone@else.com"

				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			verifier := pushTokenVerifier{
				audience:       tt.audience,
				serviceAccount: pushAccount,
				validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
					gotAudience = audience
					if tt.validErr != nil {
						return nil, tt.validErr
					}
					assert.Equal(t, "tok", token)

					return tt.payload(), nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.local/push", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			err := verifier.verify(req)
			if tt.wantError {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAud, gotAudience)
		})
	}
}
