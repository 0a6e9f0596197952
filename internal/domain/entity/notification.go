package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushStatus is the outcome of a single device push.
type PushStatus string

const (
	PushStatusSent   PushStatus = "sent"
	PushStatusFailed PushStatus = "failed"
)

// PushNotificationLog records one push attempt for a lifecycle event.
type PushNotificationLog struct {
	ID           uuid.UUID
	EventName    string    // order_update or catering_update.
	ReferenceID  uuid.UUID // Order or catering request the event was about.
	CustomerID   uuid.UUID
	DeviceID     uuid.UUID
	Status       PushStatus
	ErrorMessage string
	SentAt       time.Time
}
