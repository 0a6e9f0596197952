package impl

import (
	"context"
	"log/slog"
	"strings"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cateringService struct {
	cateringRepo      repository.CateringRepository
	customerRepo      repository.CustomerRepository
	notifier          service.LifecycleNotifier
	strictTransitions bool
	verifyTotals      bool
	logger            *slog.Logger
}

// CateringServiceParams holds dependencies for CateringService, injected by Fx.
type CateringServiceParams struct {
	fx.In

	CateringRepo repository.CateringRepository
	CustomerRepo repository.CustomerRepository
	Notifier     service.LifecycleNotifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCateringService is the constructor for cateringService.
func NewCateringService(params CateringServiceParams) usecase.CateringUsecase {
	srv := &cateringService{
		cateringRepo: params.CateringRepo,
		customerRepo: params.CustomerRepo,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Lifecycle != nil {
		srv.strictTransitions = params.Config.Lifecycle.StrictTransitions
		srv.verifyTotals = params.Config.Lifecycle.VerifyTotals
	}

	return srv
}

func (srv *cateringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates the booking, stores it as Pending Review and announces it to the admins.
// Blank contact details are taken from the customer's profile.
func (srv *cateringService) Submit(ctx context.Context, customerID uuid.UUID, input *usecase.SubmitCateringInput) (*entity.CateringRequest, error) {
	request := &entity.CateringRequest{
		CustomerID:     customerID,
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:  strings.TrimSpace(input.CustomerEmail),
		EventType:      strings.TrimSpace(input.EventType),
		EventDate:      strings.TrimSpace(input.EventDate),
		EventTime:      strings.TrimSpace(input.EventTime),
		GuestCount:     input.GuestCount,
		ServiceOption:  input.ServiceOption,
		VenueName:      strings.TrimSpace(input.VenueName),
		VenueAddress:   input.VenueAddress,
		MenuItems:      input.MenuItems,
		EstimatedTotal: input.EstimatedTotal,
		Status:         entity.CateringStatusPendingReview,
	}

	if request.CustomerName == "" || request.CustomerPhone == "" {
		contact, err := loadCustomerContact(ctx, srv.customerRepo, customerID)
		if err != nil {
			return nil, err
		}

		fillIfBlank(&request.CustomerName, contact.Name)
		fillIfBlank(&request.CustomerPhone, contact.Phone)
		fillIfBlank(&request.CustomerEmail, contact.Email)
	}
	request.Normalize()

	if err := request.Validate(); err != nil {
		return nil, err
	}

	if srv.verifyTotals && !entity.TotalsMatch(request.EstimatedTotal, request.ComputedTotal()) {
		return nil, domainerrors.Invalid("estimatedTotal", "Estimated total does not match the menu items")
	}

	if err := srv.cateringRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create catering request")
	}

	srv.log(ctx).Info("Catering request submitted",
		slog.String("request_id", request.ID.String()),
		slog.String("customer_id", customerID.String()),
		slog.Int("guest_count", request.GuestCount),
	)

	srv.notifier.Notify(ctx, service.LifecycleEvent{
		Name:        service.EventNewCateringRequest,
		CustomerID:  request.CustomerID,
		ReferenceID: request.ID,
		Status:      string(request.Status),
		OccurredAt:  request.CreatedAt,
		Payload:     request,
	})

	return request, nil
}

// UpdateStatus applies a staff review decision and tells the owning customer.
func (srv *cateringService) UpdateStatus(ctx context.Context, requestID uuid.UUID, status entity.CateringStatus, adminNotes *string) (*entity.CateringRequest, error) {
	if !status.IsValid() {
		return nil, domainerrors.Invalid("status", "Invalid catering status")
	}

	current, err := srv.cateringRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catering request for status update")
	}

	if !current.Status.CanTransitionTo(status, srv.strictTransitions) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move catering request from " + string(current.Status) + " to " + string(status),
		)
	}

	updated, err := srv.cateringRepo.UpdateStatus(ctx, requestID, current.Status, status, adminNotes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update catering status")
	}

	srv.log(ctx).Info("Catering status updated",
		slog.String("request_id", requestID.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)),
	)

	srv.notifier.Notify(ctx, service.LifecycleEvent{
		Name:        service.EventCateringUpdate,
		CustomerID:  updated.CustomerID,
		ReferenceID: updated.ID,
		Status:      string(updated.Status),
		OccurredAt:  updated.UpdatedAt,
		Payload:     updated,
	})

	return updated, nil
}

func (srv *cateringService) ListCustomerRequests(ctx context.Context, customerID uuid.UUID) ([]*entity.CateringRequest, error) {
	requests, err := srv.cateringRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer catering requests")
	}

	return requests, nil
}

func (srv *cateringService) ListRequests(ctx context.Context, status *entity.CateringStatus) ([]*entity.CateringRequest, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.Invalid("status", "Invalid catering status")
	}

	requests, err := srv.cateringRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catering requests")
	}

	return requests, nil
}

func (srv *cateringService) GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.CateringRequest, error) {
	request, err := srv.cateringRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get catering request")
	}

	return request, nil
}
