package entity

import (
	"testing"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPickupOrder() *Order {
	return &Order{
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		OrderType:     OrderTypePickup,
		Items:         []OrderItem{{Name: "Dabeli", Price: 40, Quantity: 2}},
		TotalPrice:    80,
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var ve *domainerrors.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)

	names := make([]string, 0, len(ve.Fields()))
	for _, f := range ve.Fields() {
		names = append(names, f.Field)
	}

	return names
}

func TestOrder_Validate_DeliveryRequiresAddress(t *testing.T) {
	order := validPickupOrder()
	order.OrderType = OrderTypeDelivery
	order.Normalize()

	err := order.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "deliveryAddress")

	order.DeliveryAddress = &DeliveryAddress{Street: "MG Road", City: "Pune"}
	err = order.Validate()
	require.Error(t, err, "missing pincode must still be rejected")

	order.DeliveryAddress.Pincode = "411001"
	assert.NoError(t, order.Validate())
}

func TestOrder_Normalize_PickupDropsAddress(t *testing.T) {
	order := validPickupOrder()
	order.DeliveryAddress = &DeliveryAddress{Street: "x"}
	order.Normalize()

	assert.Nil(t, order.DeliveryAddress)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.NoError(t, order.Validate())
}

func TestOrder_Validate_ItemsAndTotal(t *testing.T) {
	order := validPickupOrder()
	order.Items = nil
	order.TotalPrice = 0
	order.Normalize()

	names := fieldNames(t, order.Validate())
	assert.Contains(t, names, "items")
	assert.Contains(t, names, "totalPrice")
}

func TestOrder_ComputedTotal(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{Name: "Dabeli", Price: 40, Quantity: 2},
		{Name: "Chai", Price: 15.5, Quantity: 3},
	}}

	assert.InDelta(t, 126.5, order.ComputedTotal(), 0.0001)
	assert.True(t, TotalsMatch(126.5, order.ComputedTotal()))
	assert.False(t, TotalsMatch(126.0, order.ComputedTotal()))
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		strict bool
		want   bool
	}{
		{"lenient accepts backwards", OrderStatusCompleted, OrderStatusPending, false, true},
		{"lenient rejects unknown", OrderStatusPending, "Shipped", false, false},
		{"strict successor", OrderStatusPending, OrderStatusPreparing, true, true},
		{"strict skip", OrderStatusPending, OrderStatusReady, true, false},
		{"strict cancel from ready", OrderStatusReady, OrderStatusCancelled, true, true},
		{"strict terminal completed", OrderStatusCompleted, OrderStatusCancelled, true, false},
		{"strict terminal cancelled", OrderStatusCancelled, OrderStatusPending, true, false},
		{"strict same status", OrderStatusPreparing, OrderStatusPreparing, true, false},
		{"strict ready to completed", OrderStatusReady, OrderStatusCompleted, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to, tt.strict))
		})
	}
}

func TestOrderStatuses_Closed(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, OrderStatus("pending").IsValid())
}
