package entity

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a food order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// orderProgression is the forward path; Cancelled sits outside it.
var orderProgression = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// OrderStatuses lists every accepted order status.
func OrderStatuses() []OrderStatus {
	return append(slices.Clone(orderProgression), OrderStatusCancelled)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(OrderStatuses(), s)
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether target may follow s. Without strict any
// valid status is accepted. With strict only the immediate successor or
// Cancelled may follow a non-terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus, strict bool) bool {
	if !target.IsValid() {
		return false
	}
	if !strict {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}

	idx := slices.Index(orderProgression, s)

	return idx >= 0 && idx+1 < len(orderProgression) && orderProgression[idx+1] == target
}

// OrderType selects delivery or pickup.
type OrderType string

const (
	OrderTypeDelivery OrderType = "Delivery"
	OrderTypePickup   OrderType = "Pickup"
)

// IsValid checks if the OrderType is a valid value.
func (t OrderType) IsValid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// DeliveryAddress is the drop-off location captured on a delivery order.
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// OrderItem is a frozen snapshot of a menu line at order time.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
}

// Order is a food order placed by a customer.
type Order struct {
	ID              uuid.UUID        `json:"id"`
	CustomerID      uuid.UUID        `json:"customerId"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	OrderType       OrderType        `json:"orderType"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`
	Items           []OrderItem      `json:"items"`
	TotalPrice      float64          `json:"totalPrice"`
	Status          OrderStatus      `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Normalize applies defaults before validation. Pickup orders carry no address.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.OrderType == OrderTypePickup {
		o.DeliveryAddress = nil
	}
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.CustomerPhone = strings.TrimSpace(o.CustomerPhone)
}

// Validate checks the create-time invariants of an order.
func (o *Order) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(o.CustomerName != "", "customerName", "Customer name is required")
	fields.Check(o.CustomerPhone != "", "customerPhone", "Customer phone is required")
	fields.Check(o.OrderType.IsValid(), "orderType", "Order type must be Delivery or Pickup")
	fields.Check(o.Status.IsValid(), "status", "Invalid order status")
	fields.Check(o.TotalPrice > 0, "totalPrice", "Total price must be greater than 0")

	if o.OrderType == OrderTypeDelivery {
		addr := o.DeliveryAddress
		if addr == nil || strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" || strings.TrimSpace(addr.Pincode) == "" {
			fields.Add("deliveryAddress", "Delivery address with street, city and pincode is required for delivery orders")
		}
	}

	if len(o.Items) == 0 {
		fields.Add("items", "Order must contain at least one item")
	}
	for i, item := range o.Items {
		prefix := "items[" + strconv.Itoa(i) + "]"
		fields.Check(strings.TrimSpace(item.Name) != "", prefix+".name", "Item name is required")
		fields.Check(item.Quantity >= 1, prefix+".quantity", "Quantity must be at least 1")
		fields.Check(item.Price >= 0, prefix+".price", "Price cannot be negative")
	}

	return fields.Err()
}

// ComputedTotal is the sum of price times quantity over the snapshot.
func (o *Order) ComputedTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// TotalsMatch compares a client total against a derived one to the cent.
func TotalsMatch(claimed, derived float64) bool {
	return math.Abs(claimed-derived) < 0.005
}
