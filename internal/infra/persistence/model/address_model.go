package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'customer_addresses' table.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressType string    `gorm:"type:varchar(16);not null"`
	Street      string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	Pincode     string    `gorm:"type:char(6);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "customer_addresses"
}
