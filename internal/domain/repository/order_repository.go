package repository

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	DefaultOrderPageSize = 20
	MaxOrderPageSize     = 100
)

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status    *entity.OrderStatus
	OrderType *entity.OrderType
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// Normalized clamps paging to page >= 1 and 1..MaxOrderPageSize items.
func (f OrderFilter) Normalized() OrderFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultOrderPageSize
	}
	f.Limit = min(f.Limit, MaxOrderPageSize)
	f.Page = max(f.Page, 1)

	return f
}

// OrderRepository defines order persistence. Orders are never deleted.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByPhone returns every order placed with the phone, newest first.
	FindByPhone(ctx context.Context, phone string) ([]*entity.Order, error)

	// FindByCustomer returns the customer's orders, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// List returns one page of matching orders and the total match count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// UpdateStatus moves the order from expected to next and returns the stored row.
	// It fails with ErrStatusConflict when the stored status is no longer expected.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) (*entity.Order, error)
}
