package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"dabeli/config"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	mockRepo "dabeli/internal/mocks/repository"
	mockSvc "dabeli/internal/mocks/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lifecycleConfig(strict, verifyTotals bool) *config.Config {
	return &config.Config{
		Lifecycle: &config.LifecycleConfig{
			StrictTransitions: strict,
			VerifyTotals:      verifyTotals,
		},
	}
}

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	qrCode       *mockSvc.MockQRCodeService
	notifier     *mockSvc.MockLifecycleNotifier
}

func createTestOrderService(t *testing.T, cfg *config.Config) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	notifier := mockSvc.NewMockLifecycleNotifier(t)

	srv := NewOrderService(OrderServiceParams{
		OrderRepo:     orderRepo,
		CustomerRepo:  customerRepo,
		QRCodeService: qrCode,
		Notifier:      notifier,
		Config:        cfg,
		Logger:        testLogger(),
	})

	return orderServiceFixtures{
		service:      srv,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		qrCode:       qrCode,
		notifier:     notifier,
	}
}

func deliveryOrderInput() *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		OrderType:     entity.OrderTypeDelivery,
		DeliveryAddress: &entity.DeliveryAddress{
			Street:  "12 MG Road",
			City:    "Pune",
			Pincode: "411001",
		},
		Items: []entity.OrderItem{
			{Name: "Dabeli", Price: 40, Quantity: 2},
			{Name: "Masala Chai", Price: 20, Quantity: 1},
		},
		TotalPrice: 100,
	}
}

func TestOrderService_PlaceOrder_NotifiesAdmins(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID
			order.CreatedAt = time.Now()

			return nil
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(event service.LifecycleEvent) bool {
			return event.Name == service.EventNewOrder &&
				event.ReferenceID == orderID &&
				event.CustomerID == customerID &&
				event.Status == string(entity.OrderStatusPending)
		})).
		Return()

	order, err := fx.service.PlaceOrder(ctx, customerID, deliveryOrderInput())
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_PlaceOrder_PickupUsesProfileName(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, true))

	ctx := context.Background()
	customerID := uuid.New()

	// Body of a quick pickup order from the app: no customerName.
	var input usecase.PlaceOrderInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"orderType": "Pickup",
		"items": [{"name": "Dabeli", "price": 40, "quantity": 2}],
		"totalPrice": 80,
		"customerPhone": "9876543210"
	}`), &input))

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, Name: "Asha Patel", Phone: "9000000000"}, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.CustomerName == "Asha Patel" && order.CustomerPhone == "9876543210"
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	order, err := fx.service.PlaceOrder(ctx, customerID, &input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Asha Patel", order.CustomerName)
	assert.Equal(t, "9876543210", order.CustomerPhone)
	assert.Nil(t, order.DeliveryAddress)
}

func TestOrderService_PlaceOrder_UnknownCustomerWithoutContact(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	customerID := uuid.New()
	input := deliveryOrderInput()
	input.CustomerName = " "

	fx.customerRepo.EXPECT().FindByID(ctx, customerID).Return(nil, domainerrors.ErrCustomerNotFound)

	_, err := fx.service.PlaceOrder(ctx, customerID, input)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestOrderService_PlaceOrder_DeliveryWithoutAddress(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	input := deliveryOrderInput()
	input.DeliveryAddress = &entity.DeliveryAddress{Street: "12 MG Road", City: "Pune"}

	_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_PickupDropsAddress(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	input := deliveryOrderInput()
	input.OrderType = entity.OrderTypePickup

	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.DeliveryAddress == nil
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), input)
	require.NoError(t, err)
	assert.Nil(t, order.DeliveryAddress)
}

func TestOrderService_PlaceOrder_TotalMismatch(t *testing.T) {
	input := deliveryOrderInput()
	input.TotalPrice = 99

	t.Run("trusted by default", func(t *testing.T) {
		fx := createTestOrderService(t, lifecycleConfig(false, false))
		ctx := context.Background()

		fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return()

		_, err := fx.service.PlaceOrder(ctx, uuid.New(), input)
		require.NoError(t, err)
	})

	t.Run("rejected when verified", func(t *testing.T) {
		fx := createTestOrderService(t, lifecycleConfig(false, true))

		_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOrderService_UpdateStatus_NotifiesOwner(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	current := &entity.Order{ID: orderID, CustomerID: ownerID, Status: entity.OrderStatusPending}
	updated := &entity.Order{ID: orderID, CustomerID: ownerID, Status: entity.OrderStatusReady}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(current, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusReady).
		Return(updated, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(event service.LifecycleEvent) bool {
			return event.Name == service.EventOrderUpdate && event.CustomerID == ownerID && event.Payload == updated
		})).
		Return()

	got, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, got.Status)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("Shipped"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	orderID := uuid.New()
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	_, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderStatusReady)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_StrictRejectsSkip(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(true, false))

	ctx := context.Background()
	orderID := uuid.New()
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)

	_, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderStatusCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	ctx := context.Background()
	orderID := uuid.New()
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusPreparing).
		Return(nil, domainerrors.ErrStatusConflict)

	_, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderStatusPreparing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStatusConflict)
}

func TestOrderService_TrackByPhone(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByPhone(ctx, "9876543210").Return([]*entity.Order{{ID: uuid.New()}}, nil)
	fx.orderRepo.EXPECT().FindByPhone(ctx, "0000000000").Return([]*entity.Order{}, nil)

	orders, err := fx.service.TrackByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = fx.service.TrackByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersForPhone)
}

func TestOrderService_ListOrders_NormalizesPaging(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Page == 1 && filter.Limit == repository.MaxOrderPageSize
		})).
		Return([]*entity.Order{}, int64(0), nil)

	page, err := fx.service.ListOrders(ctx, repository.OrderFilter{Page: -3, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, repository.MaxOrderPageSize, page.Limit)
}

func TestOrderService_ListOrders_InvalidStatusFilter(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))

	status := entity.OrderStatus("Lost")
	_, err := fx.service.ListOrders(context.Background(), repository.OrderFilter{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_TrackingQRCode(t *testing.T) {
	fx := createTestOrderService(t, lifecycleConfig(false, false))
	ctx := context.Background()

	ownerID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, CustomerID: ownerID, CustomerPhone: "9876543210"}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil).Twice()
	fx.qrCode.EXPECT().GenerateTrackingQR("9876543210").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.TrackingQRCode(ctx, ownerID, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.TrackingQRCode(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}
