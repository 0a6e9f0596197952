// Package usecase declares the application operations the delivery layer calls.
package usecase

import (
	"context"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"

	"github.com/google/uuid"
)

// PlaceOrderInput is the customer-supplied part of a new order.
type PlaceOrderInput struct {
	CustomerName    string                  `json:"customerName"`
	CustomerPhone   string                  `json:"customerPhone"`
	OrderType       entity.OrderType        `json:"orderType"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	Items           []entity.OrderItem      `json:"items"`
	TotalPrice      float64                 `json:"totalPrice"`
}

// OrderPage is one page of the admin order listing.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	// PlaceOrder validates and persists a Pending order owned by customerID and tells the admins.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// UpdateStatus moves an order to status and tells the owning customer.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// TrackByPhone returns every order placed with phone, newest first.
	TrackByPhone(ctx context.Context, phone string) ([]*entity.Order, error)

	// ListCustomerOrders returns the customer's own orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders is the filtered, paginated admin listing.
	ListOrders(ctx context.Context, filter repository.OrderFilter) (*OrderPage, error)

	// GetOrder returns any order for staff.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// TrackingQRCode renders a PNG pointing at the public tracking page of the order's phone.
	// Only the owning customer may render it.
	TrackingQRCode(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)
}
