package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventName identifies a lifecycle transition broadcast to clients.
type EventName string

const (
	EventNewOrder           EventName = "new_order"
	EventOrderUpdate        EventName = "order_update"
	EventNewCateringRequest EventName = "new_catering_request"
	EventCateringUpdate     EventName = "catering_update"
)

// ForAdmins reports whether the event goes to the admin audience.
// Every other event goes to the owning customer's room.
func (n EventName) ForAdmins() bool {
	return n == EventNewOrder || n == EventNewCateringRequest
}

// LifecycleEvent is emitted after an order or catering request is persisted.
type LifecycleEvent struct {
	RequestID   string    `json:"requestId,omitempty"` // For distributed tracing
	Name        EventName `json:"event"`
	CustomerID  uuid.UUID `json:"customerId"`
	ReferenceID uuid.UUID `json:"referenceId"` // Order or catering request ID
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
	Payload     any       `json:"data"` // Full document as returned by the API
}

// EventPublisher defines the interface for relaying lifecycle events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes an event for asynchronous consumers
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// LifecycleNotifier fans a lifecycle event out to connected clients and consumers.
// It never blocks the caller on slow consumers and never fails the caller.
type LifecycleNotifier interface {
	Notify(ctx context.Context, event LifecycleEvent)
}

// RealtimeBroadcaster delivers frames to connected sockets.
type RealtimeBroadcaster interface {
	// BroadcastAdmins sends to every admin connection.
	BroadcastAdmins(event EventName, payload any)

	// SendToCustomer sends to every authenticated connection of the customer.
	SendToCustomer(customerID uuid.UUID, event EventName, payload any)
}
