package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names surfaced by constraint violations.
const (
	CustomerPhoneIndex = "idx_customers_phone"
	CustomerEmailIndex = "idx_customers_email"
	AdminUsernameIndex = "idx_admins_username"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Phone        string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_customers_phone"`
	Email        *string         `gorm:"type:varchar(255);uniqueIndex:idx_customers_email,where:email IS NOT NULL"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	Addresses    []*AddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_admins_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// ResetTokenModel is the GORM-specific struct for the 'password_reset_tokens' table.
// customer_id is unique so a customer holds at most one code.
type ResetTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reset_tokens_customer"`
	TokenHash  string    `gorm:"type:varchar(255);not null"`
	Attempts   int       `gorm:"not null;default:0"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
