package model

import (
	"time"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Items and the delivery address are snapshots taken at placement time.
type OrderModel struct {
	ID              uuid.UUID                                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID      uuid.UUID                                   `gorm:"type:uuid;not null;index"`
	CustomerName    string                                      `gorm:"type:varchar(255);not null"`
	CustomerPhone   string                                      `gorm:"type:varchar(32);not null;index"`
	OrderType       string                                      `gorm:"type:varchar(16);not null"`
	DeliveryAddress datatypes.JSONType[*entity.DeliveryAddress] `gorm:"type:jsonb"` // JSON null for pickup orders.
	Items           datatypes.JSONSlice[entity.OrderItem]       `gorm:"type:jsonb;not null"`
	TotalPrice      float64                                     `gorm:"type:numeric(10,2);not null"`
	Status          string                                      `gorm:"type:varchar(16);not null;index"`
	CreatedAt       time.Time                                   `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// CateringRequestModel is the GORM-specific struct for the 'catering_requests' table.
type CateringRequestModel struct {
	ID             uuid.UUID                                    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID     uuid.UUID                                    `gorm:"type:uuid;not null;index"`
	CustomerName   string                                       `gorm:"type:varchar(255);not null"`
	CustomerPhone  string                                       `gorm:"type:varchar(32);not null"`
	CustomerEmail  string                                       `gorm:"type:varchar(255)"`
	EventType      string                                       `gorm:"type:varchar(100);not null"`
	EventDate      time.Time                                    `gorm:"type:date;not null"`
	EventTime      string                                       `gorm:"type:varchar(32);not null"`
	GuestCount     int                                          `gorm:"not null"`
	ServiceOption  string                                       `gorm:"type:varchar(32);not null"`
	VenueName      string                                       `gorm:"type:varchar(255)"`
	VenueAddress   string                                       `gorm:"type:text;not null"`
	MenuItems      datatypes.JSONSlice[entity.CateringMenuItem] `gorm:"type:jsonb;not null"`
	EstimatedTotal float64                                      `gorm:"type:numeric(12,2);not null"`
	Status         string                                       `gorm:"type:varchar(32);not null;index"`
	AdminNotes     string                                       `gorm:"type:text"`
	CreatedAt      time.Time                                    `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CateringRequestModel) TableName() string {
	return "catering_requests"
}
