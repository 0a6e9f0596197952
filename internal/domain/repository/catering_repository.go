package repository

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// CateringRepository defines catering request persistence. Requests are never deleted.
type CateringRepository interface {
	Create(ctx context.Context, request *entity.CateringRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CateringRequest, error)

	// FindByCustomer returns the customer's requests, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CateringRequest, error)

	// List returns all requests, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.CateringStatus) ([]*entity.CateringRequest, error)

	// UpdateStatus compare-and-swaps the status and, when adminNotes is non-nil, replaces the notes.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.CateringStatus, adminNotes *string) (*entity.CateringRequest, error)
}
