package model

import (
	"time"

	"github.com/google/uuid"
)

// PushNotificationLogModel is the GORM-specific struct for the 'push_notification_logs' table.
// It represents a log entry for a single push sent to a customer device.
type PushNotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventName    string    `gorm:"type:varchar(64);not null"`
	ReferenceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushNotificationLogModel) TableName() string {
	return "push_notification_logs"
}
