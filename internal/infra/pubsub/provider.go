// Package pubsub forwards order and catering lifecycle events to the push worker.
package pubsub

import (
	"context"
	"log/slog"

	"dabeli/config"
	"dabeli/internal/domain/constants"
	"dabeli/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLifecycleEvent(_ context.Context, event *service.LifecycleEvent) error {
	p.logger.Debug("No pubsub provider, event dropped",
		slog.String("event", string(event.Name)),
		slog.String("reference_id", event.ReferenceID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Push notifications disabled, no pubsub provider configured")

		return &noopPublisher{logger: params.Logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		params.Logger.Info("Lifecycle events go to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger)
	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectID and pubsub.topicID are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

// eventAttributes are the message attributes subscribers can filter on.
func eventAttributes(event *service.LifecycleEvent) map[string]string {
	attributes := map[string]string{
		"event":        string(event.Name),
		"reference_id": event.ReferenceID.String(),
		"customer_id":  event.CustomerID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey keeps every event about one order or catering request in sequence.
func orderingKey(event *service.LifecycleEvent) string {
	return event.ReferenceID.String()
}
