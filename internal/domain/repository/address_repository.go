package repository

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository defines the interface for customer address persistence.
type AddressRepository interface {
	// CreateAddress persists a new address for a customer.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByCustomer retrieves all addresses of a customer, oldest first.
	FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
