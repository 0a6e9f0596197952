package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDevice is a phone registered to receive order status pushes.
type CustomerDevice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	FCMToken   string    `json:"fcmToken"` // Firebase Cloud Messaging token.
	DeviceID   string    `json:"deviceId"` // Client supplied device identifier.
	Platform   string    `json:"platform"` // ios or android.
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
