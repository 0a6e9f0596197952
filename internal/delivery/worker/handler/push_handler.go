// Package handler turns Pub/Sub push deliveries into customer notifications.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/constants"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// PubSubMessage is the body of a Pub/Sub push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler answers the worker's /push endpoint.
type PushHandler struct {
	verifyToken     func(*http.Request) error
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewPushHandler checks Google's push token in production when events come from Cloud Pub/Sub.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.IsProduction() {
		verifier := pushTokenVerifier{validate: idtoken.Validate}
		if cfg.Worker != nil {
			verifier.audience = cfg.Worker.PushAudience
			verifier.serviceAccount = cfg.Worker.PushServiceAccount
		}
		h.verifyToken = verifier.verify
	}

	return h
}

// HandlePush acknowledges with 2xx or 400 so Pub/Sub stops delivering,
// and answers 503 when the event should be retried.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("Rejected push delivery", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Dropping malformed push delivery", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := firstNonEmpty(
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	requestID = deliverycontext.NormalizeRequestID(requestID)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	logger = logger.With(
		slog.String("message_id", msg.Message.MessageID),
		slog.String("event", string(event.Name)),
		slog.String("reference_id", event.ReferenceID.String()),
	)

	summary, err := h.notificationSvc.PushLifecycleEvent(ctx, event)
	if err != nil {
		logger.Error("Lifecycle push failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("Lifecycle push delivered",
		slog.Int("devices", summary.Devices),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.LifecycleEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "invalid push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.LifecycleEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "message data is not a lifecycle event")
	}

	return &msg, &event, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// pushTokenVerifier checks the OIDC token Cloud Pub/Sub attaches to authenticated push subscriptions.
type pushTokenVerifier struct {
	audience       string
	serviceAccount string
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func (v pushTokenVerifier) verify(req *http.Request) error {
	token, ok := bearerToken(req.Header.Get(echo.HeaderAuthorization))
	if !ok {
		return errors.New("push request carries no bearer token")
	}

	audience := v.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := v.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "push token rejected")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("push token issued by %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push token email is not verified")
	}
	if v.serviceAccount != "" && payload.Claims["email"] != v.serviceAccount {
		return errors.Errorf("push token belongs to %v", payload.Claims["email"])
	}

	return nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}

	return header[len(prefix):], true
}
