package impl

import (
	"context"
	"testing"

	"dabeli/config"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/service"
	mockRepo "dabeli/internal/mocks/repository"
	mockSvc "dabeli/internal/mocks/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cateringServiceFixtures struct {
	service      usecase.CateringUsecase
	cateringRepo *mockRepo.MockCateringRepository
	customerRepo *mockRepo.MockCustomerRepository
	notifier     *mockSvc.MockLifecycleNotifier
}

func createTestCateringService(t *testing.T, cfg *config.Config) cateringServiceFixtures {
	cateringRepo := mockRepo.NewMockCateringRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	notifier := mockSvc.NewMockLifecycleNotifier(t)

	return cateringServiceFixtures{
		service: NewCateringService(CateringServiceParams{
			CateringRepo: cateringRepo,
			CustomerRepo: customerRepo,
			Notifier:     notifier,
			Config:       cfg,
			Logger:       testLogger(),
		}),
		cateringRepo: cateringRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

func weddingInput() *usecase.SubmitCateringInput {
	return &usecase.SubmitCateringInput{
		CustomerName:  "Ravi",
		CustomerPhone: "9123456780",
		EventType:     "Wedding",
		EventDate:     "2026-12-12",
		EventTime:     "19:00",
		GuestCount:    120,
		ServiceOption: entity.ServiceFullServices,
		VenueAddress:  "Lawns, Baner, Pune",
		MenuItems: []entity.CateringMenuItem{
			{Name: "Dabeli", Quantity: 150, PricePerUnit: 35},
		},
		EstimatedTotal: 5250,
	}
}

func TestCateringService_Submit_NotifiesAdmins(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	customerID := uuid.New()
	requestID := uuid.New()

	fx.cateringRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CateringRequest")).
		RunAndReturn(func(_ context.Context, request *entity.CateringRequest) error {
			request.ID = requestID

			return nil
		})
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(event service.LifecycleEvent) bool {
			return event.Name == service.EventNewCateringRequest && event.ReferenceID == requestID
		})).
		Return()

	request, err := fx.service.Submit(ctx, customerID, weddingInput())
	require.NoError(t, err)
	assert.Equal(t, entity.CateringStatusPendingReview, request.Status)
	assert.Equal(t, customerID, request.CustomerID)
}

func TestCateringService_Submit_SelfPickupUsesSentinel(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))
	ctx := context.Background()

	input := weddingInput()
	input.ServiceOption = entity.ServiceSelfPickup
	input.VenueAddress = ""

	fx.cateringRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(request *entity.CateringRequest) bool {
			return request.VenueAddress == entity.VenuePickupSentinel
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	_, err := fx.service.Submit(ctx, uuid.New(), input)
	require.NoError(t, err)
}

func TestCateringService_Submit_FillsContactFromProfile(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))
	ctx := context.Background()
	customerID := uuid.New()
	email := "ravi@example.com"

	input := weddingInput()
	input.CustomerName = ""
	input.CustomerPhone = ""

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, Name: "Ravi Shah", Phone: "9123456780", Email: &email}, nil)
	fx.cateringRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(request *entity.CateringRequest) bool {
			return request.CustomerName == "Ravi Shah" &&
				request.CustomerPhone == "9123456780" &&
				request.CustomerEmail == email
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	request, err := fx.service.Submit(ctx, customerID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.CateringStatusPendingReview, request.Status)
}

func TestCateringService_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SubmitCateringInput)
	}{
		{name: "guest floor", mutate: func(in *usecase.SubmitCateringInput) { in.GuestCount = 9 }},
		{name: "venue for delivery", mutate: func(in *usecase.SubmitCateringInput) {
			in.ServiceOption = entity.ServiceHomeDelivery
			in.VenueAddress = "  "
		}},
		{name: "no menu items", mutate: func(in *usecase.SubmitCateringInput) { in.MenuItems = nil }},
		{name: "bad date", mutate: func(in *usecase.SubmitCateringInput) { in.EventDate = "12/12/2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCateringService(t, lifecycleConfig(false, false))
			input := weddingInput()
			tt.mutate(input)

			_, err := fx.service.Submit(context.Background(), uuid.New(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCateringService_Submit_VerifiedTotal(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, true))

	input := weddingInput()
	input.EstimatedTotal = 5000

	_, err := fx.service.Submit(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCateringService_UpdateStatus_WithNotes(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()
	notes := "Menu confirmed over phone"
	current := &entity.CateringRequest{ID: requestID, CustomerID: ownerID, Status: entity.CateringStatusPendingReview}
	updated := &entity.CateringRequest{ID: requestID, CustomerID: ownerID, Status: entity.CateringStatusConfirmed, AdminNotes: notes}

	fx.cateringRepo.EXPECT().FindByID(ctx, requestID).Return(current, nil)
	fx.cateringRepo.EXPECT().
		UpdateStatus(ctx, requestID, entity.CateringStatusPendingReview, entity.CateringStatusConfirmed, &notes).
		Return(updated, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(event service.LifecycleEvent) bool {
			return event.Name == service.EventCateringUpdate && event.CustomerID == ownerID
		})).
		Return()

	got, err := fx.service.UpdateStatus(ctx, requestID, entity.CateringStatusConfirmed, &notes)
	require.NoError(t, err)
	assert.Equal(t, notes, got.AdminNotes)
}

func TestCateringService_UpdateStatus_StrictTerminal(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(true, false))

	ctx := context.Background()
	requestID := uuid.New()
	fx.cateringRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.CateringRequest{ID: requestID, Status: entity.CateringStatusCompleted}, nil)

	_, err := fx.service.UpdateStatus(ctx, requestID, entity.CateringStatusNegotiating, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestCateringService_UpdateStatus_AnyStatusByDefault(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	requestID := uuid.New()
	fx.cateringRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.CateringRequest{ID: requestID, Status: entity.CateringStatusCompleted}, nil)
	fx.cateringRepo.EXPECT().
		UpdateStatus(ctx, requestID, entity.CateringStatusCompleted, entity.CateringStatusPendingReview, (*string)(nil)).
		Return(&entity.CateringRequest{ID: requestID, Status: entity.CateringStatusPendingReview}, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	_, err := fx.service.UpdateStatus(ctx, requestID, entity.CateringStatusPendingReview, nil)
	require.NoError(t, err)
}

func TestCateringService_ListRequests_InvalidFilter(t *testing.T) {
	fx := createTestCateringService(t, lifecycleConfig(false, false))

	status := entity.CateringStatus("Maybe")
	_, err := fx.service.ListRequests(context.Background(), &status)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
