package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCateringRequest() *CateringRequest {
	return &CateringRequest{
		CustomerName:   "Ravi",
		CustomerPhone:  "9123456780",
		EventType:      "Birthday",
		EventDate:      "2026-12-20",
		EventTime:      "19:00",
		GuestCount:     25,
		VenueAddress:   "12 Lake View, Pune",
		MenuItems:      []CateringMenuItem{{Name: "Dabeli", Quantity: 50, PricePerUnit: 30}},
		EstimatedTotal: 1500,
	}
}

func TestCateringRequest_Normalize_Defaults(t *testing.T) {
	req := validCateringRequest()
	req.Normalize()

	assert.Equal(t, ServiceHomeDelivery, req.ServiceOption)
	assert.Equal(t, CateringStatusPendingReview, req.Status)
	assert.NoError(t, req.Validate())
}

func TestCateringRequest_SelfPickupUsesSentinel(t *testing.T) {
	req := validCateringRequest()
	req.ServiceOption = ServiceSelfPickup
	req.VenueAddress = ""
	req.Normalize()

	assert.Equal(t, VenuePickupSentinel, req.VenueAddress)
	assert.NoError(t, req.Validate())
}

func TestCateringRequest_VenueRequired(t *testing.T) {
	for _, option := range []ServiceOption{ServiceHomeDelivery, ServiceFullServices} {
		t.Run(string(option), func(t *testing.T) {
			req := validCateringRequest()
			req.ServiceOption = option
			req.VenueAddress = "   "
			req.Normalize()

			assert.Contains(t, fieldNames(t, req.Validate()), "venueAddress")
		})
	}
}

func TestCateringRequest_GuestFloor(t *testing.T) {
	for _, option := range []ServiceOption{ServiceHomeDelivery, ServiceSelfPickup, ServiceFullServices} {
		req := validCateringRequest()
		req.ServiceOption = option
		req.GuestCount = 9
		req.Normalize()

		assert.Contains(t, fieldNames(t, req.Validate()), "guestCount", "option %s", option)
	}

	req := validCateringRequest()
	req.GuestCount = MinGuestCount
	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestCateringRequest_Validate_MenuAndDate(t *testing.T) {
	req := validCateringRequest()
	req.MenuItems = nil
	req.EventDate = "20/12/2026"
	req.Normalize()

	err := req.Validate()
	require.Error(t, err)
	names := fieldNames(t, err)
	assert.Contains(t, names, "menuItems")
	assert.Contains(t, names, "eventDate")
}

func TestCateringRequest_ComputedTotal(t *testing.T) {
	req := validCateringRequest()
	req.MenuItems = append(req.MenuItems, CateringMenuItem{Name: "Chai", Quantity: 30, PricePerUnit: 10})

	assert.InDelta(t, 1800, req.ComputedTotal(), 0.0001)
}

func TestCateringStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   CateringStatus
		to     CateringStatus
		strict bool
		want   bool
	}{
		{"lenient reopen rejected", CateringStatusRejected, CateringStatusConfirmed, false, true},
		{"lenient unknown", CateringStatusConfirmed, "Cancelled", false, false},
		{"strict review to confirmed", CateringStatusPendingReview, CateringStatusConfirmed, true, true},
		{"strict negotiating to rejected", CateringStatusNegotiating, CateringStatusRejected, true, true},
		{"strict confirmed to rejected", CateringStatusConfirmed, CateringStatusRejected, true, false},
		{"strict completed is final", CateringStatusCompleted, CateringStatusNegotiating, true, false},
		{"strict rejected is final", CateringStatusRejected, CateringStatusPendingReview, true, false},
		{"strict confirmed to completed", CateringStatusConfirmed, CateringStatusCompleted, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to, tt.strict))
		})
	}
}
