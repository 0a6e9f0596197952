// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository defines customer account persistence.
// Duplicate phone or email surfaces as ErrPhoneAlreadyRegistered or ErrEmailAlreadyRegistered.
type CustomerRepository interface {
	// Create persists a new customer and fills its generated fields.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID loads a customer together with its saved addresses.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByPhone loads a customer by login phone, without addresses.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// UpdateProfile writes name and email.
	UpdateProfile(ctx context.Context, customer *entity.Customer) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AdminRepository defines staff account persistence.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
