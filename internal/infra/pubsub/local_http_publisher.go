package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/lifecycle-push"
	localPushTimeout  = 10 * time.Second
)

// pushEndpointPublisher posts each event straight to the worker's push
// endpoint in the envelope Cloud Pub/Sub would use, so development runs
// without a broker.
type pushEndpointPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// PushMessage is the body Cloud Pub/Sub posts to a push subscription.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher posts events to endpoint, normally the worker's /push route.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushEndpointPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

// NewPushMessage wraps event the way a push subscription delivers it.
func NewPushMessage(event *service.LifecycleEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode lifecycle event")
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.OrderingKey = orderingKey(event)
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	return msg, nil
}

func (p *pushEndpointPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	msg, err := NewPushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to post %s to %s", event.Name, p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Name)
	}

	p.logger.Debug("Lifecycle event pushed",
		slog.String("event", string(event.Name)),
		slog.String("reference_id", event.ReferenceID.String()),
		slog.String("message_id", msg.Message.MessageID),
	)

	return nil
}

func (p *pushEndpointPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
