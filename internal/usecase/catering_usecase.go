package usecase

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitCateringInput is the customer-supplied part of a catering request.
type SubmitCateringInput struct {
	CustomerName   string                    `json:"customerName"`
	CustomerPhone  string                    `json:"customerPhone"`
	CustomerEmail  string                    `json:"customerEmail,omitempty"`
	EventType      string                    `json:"eventType"`
	EventDate      string                    `json:"eventDate"`
	EventTime      string                    `json:"eventTime"`
	GuestCount     int                       `json:"guestCount"`
	ServiceOption  entity.ServiceOption      `json:"serviceOption,omitempty"`
	VenueName      string                    `json:"venueName,omitempty"`
	VenueAddress   string                    `json:"venueAddress,omitempty"`
	MenuItems      []entity.CateringMenuItem `json:"menuItems"`
	EstimatedTotal float64                   `json:"estimatedTotal"`
}

// CateringUsecase drives the catering request lifecycle.
type CateringUsecase interface {
	// Submit validates and persists a Pending Review request and tells the admins.
	Submit(ctx context.Context, customerID uuid.UUID, input *SubmitCateringInput) (*entity.CateringRequest, error)

	// UpdateStatus moves a request to status, optionally replacing the admin notes, and tells the owner.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status entity.CateringStatus, adminNotes *string) (*entity.CateringRequest, error)

	// ListCustomerRequests returns the customer's own requests, newest first.
	ListCustomerRequests(ctx context.Context, customerID uuid.UUID) ([]*entity.CateringRequest, error)

	// ListRequests returns every request, optionally filtered by status.
	ListRequests(ctx context.Context, status *entity.CateringStatus) ([]*entity.CateringRequest, error)

	// GetRequest returns any request for staff.
	GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.CateringRequest, error)
}
