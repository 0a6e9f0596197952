package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/service"
	mockSvc "dabeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_NewOrderGoesToAdmins(t *testing.T) {
	broadcaster := mockSvc.NewMockRealtimeBroadcaster(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := New(broadcaster, publisher, discardLogger())

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	payload := map[string]string{"id": "order-1"}
	event := service.LifecycleEvent{
		Name:        service.EventNewOrder,
		CustomerID:  uuid.New(),
		ReferenceID: uuid.New(),
		Status:      "Pending",
		Payload:     payload,
	}

	broadcaster.EXPECT().BroadcastAdmins(service.EventNewOrder, payload).Return()

	published := make(chan *service.LifecycleEvent, 1)
	publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.AnythingOfType("*service.LifecycleEvent")).
		RunAndReturn(func(_ context.Context, e *service.LifecycleEvent) error {
			published <- e

			return nil
		})

	dispatcher.Notify(ctx, event)
	dispatcher.Wait(context.Background())

	got := <-published
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, event.ReferenceID, got.ReferenceID)
}

func TestDispatcher_UpdateGoesToCustomerRoom(t *testing.T) {
	broadcaster := mockSvc.NewMockRealtimeBroadcaster(t)
	dispatcher := New(broadcaster, nil, discardLogger())

	customerID := uuid.New()
	payload := map[string]string{"status": "Ready"}

	broadcaster.EXPECT().SendToCustomer(customerID, service.EventOrderUpdate, payload).Return()

	dispatcher.Notify(context.Background(), service.LifecycleEvent{
		Name:       service.EventOrderUpdate,
		CustomerID: customerID,
		Payload:    payload,
	})
}

func TestDispatcher_PublishOutlivesRequestContext(t *testing.T) {
	broadcaster := mockSvc.NewMockRealtimeBroadcaster(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := New(broadcaster, publisher, discardLogger())

	broadcaster.EXPECT().SendToCustomer(mock.Anything, service.EventCateringUpdate, mock.Anything).Return()

	ctxErr := make(chan error, 1)
	publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.LifecycleEvent) error {
			ctxErr <- ctx.Err()

			return errors.New("queue unavailable")
		})

	ctx, cancel := context.WithCancel(context.Background())
	dispatcher.Notify(ctx, service.LifecycleEvent{Name: service.EventCateringUpdate, CustomerID: uuid.New()})
	cancel()

	dispatcher.Wait(context.Background())
	assert.NoError(t, <-ctxErr)
}

func TestDispatcher_StopWaitsForPublishes(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	broadcaster := mockSvc.NewMockRealtimeBroadcaster(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	notifier := NewDispatcher(Params{
		Lc:          lc,
		Broadcaster: broadcaster,
		Publisher:   publisher,
		Logger:      discardLogger(),
	})

	broadcaster.EXPECT().BroadcastAdmins(service.EventNewCateringRequest, mock.Anything).Return()

	release := make(chan struct{})
	finished := make(chan struct{})
	publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.LifecycleEvent) error {
			<-release
			close(finished)

			return nil
		})

	lc.RequireStart()
	notifier.Notify(context.Background(), service.LifecycleEvent{Name: service.EventNewCateringRequest, Payload: "x"})

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()
	lc.RequireStop()

	select {
	case <-finished:
	default:
		t.Fatal("stop returned before the publish finished")
	}
}
