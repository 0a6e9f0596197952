package postgres

import (
	"testing"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMapper_PickupKeepsNullAddress(t *testing.T) {
	order := &entity.Order{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		OrderType:     entity.OrderTypePickup,
		Items:         []entity.OrderItem{{Name: "Dabeli", Price: 40, Quantity: 2}},
		TotalPrice:    80,
		Status:        entity.OrderStatusPending,
	}

	got := toOrderDomain(fromOrderDomain(order))

	assert.Nil(t, got.DeliveryAddress)
	assert.Equal(t, order.Items, got.Items)
	assert.Equal(t, order.Status, got.Status)
}

func TestOrderMapper_DeliveryAddress(t *testing.T) {
	address := &entity.DeliveryAddress{Street: "MG Road", City: "Pune", Pincode: "411001"}
	order := &entity.Order{OrderType: entity.OrderTypeDelivery, DeliveryAddress: address}

	got := toOrderDomain(fromOrderDomain(order))

	require.NotNil(t, got.DeliveryAddress)
	assert.Equal(t, *address, *got.DeliveryAddress)
	assert.NotNil(t, got.Items)
}

func TestCateringMapper_EventDate(t *testing.T) {
	request := &entity.CateringRequest{
		EventDate:     "2026-12-24",
		ServiceOption: entity.ServiceSelfPickup,
		Status:        entity.CateringStatusPendingReview,
	}

	requestM, err := fromCateringDomain(request)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC), requestM.EventDate)

	got := toCateringDomain(requestM)
	assert.Equal(t, "2026-12-24", got.EventDate)
	assert.NotNil(t, got.MenuItems)
}

func TestCateringMapper_RejectsBadDate(t *testing.T) {
	_, err := fromCateringDomain(&entity.CateringRequest{EventDate: "24/12/2026"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuMapper_DefaultsModifiers(t *testing.T) {
	itemM := fromMenuItemDomain(&entity.MenuItem{Name: "Masala Dabeli", Price: 50})

	assert.NotNil(t, itemM.Modifiers)
	assert.Empty(t, toMenuItemDomain(itemM).Modifiers)
}
