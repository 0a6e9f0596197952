package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	// MinGuestCount is the hard floor for any catering booking.
	MinGuestCount = 10
	// VenuePickupSentinel replaces the venue address of self pickup requests.
	VenuePickupSentinel = "N/A (Pickup)"
)

// CateringStatus is the review state of a catering request.
type CateringStatus string

const (
	CateringStatusPendingReview CateringStatus = "Pending Review"
	CateringStatusConfirmed     CateringStatus = "Confirmed"
	CateringStatusNegotiating   CateringStatus = "Negotiating"
	CateringStatusRejected      CateringStatus = "Rejected"
	CateringStatusCompleted     CateringStatus = "Completed"
)

// CateringStatuses lists every accepted catering status.
func CateringStatuses() []CateringStatus {
	return []CateringStatus{
		CateringStatusPendingReview,
		CateringStatusConfirmed,
		CateringStatusNegotiating,
		CateringStatusRejected,
		CateringStatusCompleted,
	}
}

// IsValid checks if the CateringStatus is a valid value.
func (s CateringStatus) IsValid() bool {
	return slices.Contains(CateringStatuses(), s)
}

// IsTerminal reports whether the request is closed.
func (s CateringStatus) IsTerminal() bool {
	return s == CateringStatusCompleted || s == CateringStatusRejected
}

// CanTransitionTo reports whether target may follow s. Without strict any
// valid status is accepted. With strict, Completed and Rejected are final
// and Rejected is only reachable while the request is still under review.
func (s CateringStatus) CanTransitionTo(target CateringStatus, strict bool) bool {
	if !target.IsValid() {
		return false
	}
	if !strict {
		return true
	}
	if s.IsTerminal() || s == target {
		return false
	}
	if target == CateringStatusRejected {
		return s == CateringStatusPendingReview || s == CateringStatusNegotiating
	}

	return true
}

// ServiceOption is how the food reaches the event.
type ServiceOption string

const (
	ServiceHomeDelivery ServiceOption = "Home Delivery"
	ServiceSelfPickup   ServiceOption = "Self Pickup"
	ServiceFullServices ServiceOption = "Full Services"
)

// IsValid checks if the ServiceOption is a valid value.
func (o ServiceOption) IsValid() bool {
	switch o {
	case ServiceHomeDelivery, ServiceSelfPickup, ServiceFullServices:
		return true
	default:
		return false
	}
}

// RequiresVenue reports whether a venue address must be supplied.
func (o ServiceOption) RequiresVenue() bool {
	return o == ServiceHomeDelivery || o == ServiceFullServices
}

// CateringMenuItem is a frozen snapshot of a dish requested for the event.
type CateringMenuItem struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Note         string  `json:"note,omitempty"`
}

// CateringRequest is a booking enquiry for an event.
type CateringRequest struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     uuid.UUID          `json:"customerId"`
	CustomerName   string             `json:"customerName"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerEmail  string             `json:"customerEmail,omitempty"`
	EventType      string             `json:"eventType"`
	EventDate      string             `json:"eventDate"` // YYYY-MM-DD
	EventTime      string             `json:"eventTime"`
	GuestCount     int                `json:"guestCount"`
	ServiceOption  ServiceOption      `json:"serviceOption"`
	VenueName      string             `json:"venueName,omitempty"`
	VenueAddress   string             `json:"venueAddress"`
	MenuItems      []CateringMenuItem `json:"menuItems"`
	EstimatedTotal float64            `json:"estimatedTotal"`
	Status         CateringStatus     `json:"status"`
	AdminNotes     string             `json:"adminNotes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// Normalize applies defaults and the self pickup venue sentinel.
func (r *CateringRequest) Normalize() {
	if r.ServiceOption == "" {
		r.ServiceOption = ServiceHomeDelivery
	}
	if r.Status == "" {
		r.Status = CateringStatusPendingReview
	}
	r.VenueAddress = strings.TrimSpace(r.VenueAddress)
	if r.ServiceOption == ServiceSelfPickup {
		r.VenueAddress = VenuePickupSentinel
	}
}

// Validate checks the create-time invariants of a catering request.
func (r *CateringRequest) Validate() error {
	var fields domainerrors.FieldCollector
	fields.Check(strings.TrimSpace(r.CustomerName) != "", "customerName", "Customer name is required")
	fields.Check(strings.TrimSpace(r.CustomerPhone) != "", "customerPhone", "Customer phone is required")
	fields.Check(strings.TrimSpace(r.EventType) != "", "eventType", "Event type is required")
	fields.Check(strings.TrimSpace(r.EventTime) != "", "eventTime", "Event time is required")
	fields.Check(r.GuestCount >= MinGuestCount, "guestCount", "Guest count must be at least 10")
	fields.Check(r.ServiceOption.IsValid(), "serviceOption", "Service option must be Home Delivery, Self Pickup or Full Services")
	fields.Check(r.Status.IsValid(), "status", "Invalid catering status")
	fields.Check(r.EstimatedTotal > 0, "estimatedTotal", "Estimated total must be greater than 0")

	if _, err := time.Parse(time.DateOnly, r.EventDate); err != nil {
		fields.Add("eventDate", "Event date must be in YYYY-MM-DD format")
	}

	if r.ServiceOption.RequiresVenue() && (r.VenueAddress == "" || r.VenueAddress == VenuePickupSentinel) {
		fields.Add("venueAddress", "Venue address is required for Home Delivery and Full Services")
	}

	if len(r.MenuItems) == 0 {
		fields.Add("menuItems", "At least one menu item is required")
	}
	for i, item := range r.MenuItems {
		prefix := "menuItems[" + strconv.Itoa(i) + "]"
		fields.Check(strings.TrimSpace(item.Name) != "", prefix+".name", "Item name is required")
		fields.Check(item.Quantity >= 1, prefix+".quantity", "Quantity must be at least 1")
		fields.Check(item.PricePerUnit >= 0, prefix+".pricePerUnit", "Price per unit cannot be negative")
	}

	return fields.Err()
}

// ComputedTotal is the sum of quantity times price per unit.
func (r *CateringRequest) ComputedTotal() float64 {
	var total float64
	for _, item := range r.MenuItems {
		total += float64(item.Quantity) * item.PricePerUnit
	}

	return total
}
