// Package events fans persisted lifecycle transitions out to sockets and the message queue.
package events

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/lifecycle"
	"dabeli/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the dispatcher, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Broadcaster service.RealtimeBroadcaster
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// Dispatcher implements service.LifecycleNotifier.
// Socket delivery happens inline and never blocks; queue publishing runs in the background.
type Dispatcher struct {
	broadcaster service.RealtimeBroadcaster
	publisher   service.EventPublisher
	logger      *slog.Logger

	inflight sync.WaitGroup
}

// NewDispatcher is the Fx constructor; shutdown waits for in-flight publishes.
func NewDispatcher(params Params) service.LifecycleNotifier {
	dispatcher := New(params.Broadcaster, params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			dispatcher.Wait(ctx)

			return nil
		},
	})

	return dispatcher
}

// New builds a dispatcher. publisher may be nil.
func New(broadcaster service.RealtimeBroadcaster, publisher service.EventPublisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
	}
}

// Notify routes the event by audience and relays it to the queue. It never fails the caller.
func (d *Dispatcher) Notify(ctx context.Context, event service.LifecycleEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if event.Name.ForAdmins() {
		d.broadcaster.BroadcastAdmins(event.Name, event.Payload)
	} else {
		d.broadcaster.SendToCustomer(event.CustomerID, event.Name, event.Payload)
	}

	logger.Debug("Lifecycle event dispatched",
		slog.String("event", string(event.Name)),
		slog.String("reference_id", event.ReferenceID.String()),
	)

	if d.publisher == nil {
		return
	}

	// The request context ends with the response; publishing outlives it.
	publishCtx := context.WithoutCancel(ctx)
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(publishCtx, lifecycle.EventDispatchTimeout)
		defer cancel()

		if err := d.publisher.PublishLifecycleEvent(ctx, &event); err != nil {
			logger.Warn("Failed to publish lifecycle event",
				slog.String("event", string(event.Name)),
				slog.String("reference_id", event.ReferenceID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until background publishes finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
