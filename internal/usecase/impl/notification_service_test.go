package impl

import (
	"context"
	"fmt"
	"testing"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/service"
	mockRepo "dabeli/internal/mocks/repository"
	mockSvc "dabeli/internal/mocks/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockDeviceRepository,
	*mockRepo.MockPushLogRepository,
	*mockSvc.MockNotificationService,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushLogRepo := mockRepo.NewMockPushLogRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	srv := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      deviceRepo,
		PushLogRepo:     pushLogRepo,
		NotificationSvc: notificationSvc,
		Logger:          testLogger(),
	})

	return srv, deviceRepo, pushLogRepo, notificationSvc
}

func orderUpdateEvent(customerID uuid.UUID) *service.LifecycleEvent {
	return &service.LifecycleEvent{
		Name:        service.EventOrderUpdate,
		CustomerID:  customerID,
		ReferenceID: uuid.New(),
		Status:      string(entity.OrderStatusReady),
	}
}

func TestNotificationService_PushLifecycleEvent_Success(t *testing.T) {
	srv, deviceRepo, pushLogRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	devices := []*entity.CustomerDevice{
		{ID: uuid.New(), CustomerID: customerID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), CustomerID: customerID, FCMToken: "token-2", IsActive: true},
	}

	deviceRepo.EXPECT().FindActiveDevicesByCustomer(ctx, customerID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"token-1", "token-2"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Body == "Your order is now Ready" && msg.Data["event"] == "order_update"
		})).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-2"}}, nil)
	pushLogRepo.EXPECT().
		BatchCreate(ctx, mock.MatchedBy(func(logs []*entity.PushNotificationLog) bool {
			return len(logs) == 2 &&
				logs[0].Status == entity.PushStatusSent &&
				logs[1].Status == entity.PushStatusFailed
		})).
		Return(nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, devices[1].ID).Return(nil)

	summary, err := srv.PushLifecycleEvent(ctx, orderUpdateEvent(customerID))
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushSummary{Devices: 2, Sent: 1, Failed: 1, RemovedDevices: 1}, summary)
}

func TestNotificationService_PushLifecycleEvent_SkipsAdminEvents(t *testing.T) {
	srv, _, _, _ := createTestNotificationService(t)

	summary, err := srv.PushLifecycleEvent(context.Background(), &service.LifecycleEvent{
		Name:       service.EventNewOrder,
		CustomerID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Zero(t, summary.Devices)
}

func TestNotificationService_PushLifecycleEvent_NoDevices(t *testing.T) {
	srv, deviceRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceRepo.EXPECT().FindActiveDevicesByCustomer(ctx, customerID).Return([]*entity.CustomerDevice{}, nil)

	summary, err := srv.PushLifecycleEvent(ctx, orderUpdateEvent(customerID))
	require.NoError(t, err)
	assert.Zero(t, summary.Sent)
}

func TestNotificationService_PushLifecycleEvent_BatchesAndTolerateFailures(t *testing.T) {
	srv, deviceRepo, pushLogRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	customerID := uuid.New()

	devices := make([]*entity.CustomerDevice, service.MaxPushBatch+1)
	for i := range devices {
		devices[i] = &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, FCMToken: fmt.Sprintf("token-%d", i)}
	}

	deviceRepo.EXPECT().FindActiveDevicesByCustomer(ctx, customerID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxPushBatch }), mock.Anything).
		Return(nil, errors.New("fcm unavailable")).
		Once()
	notificationSvc.EXPECT().
		SendBatch(ctx, []string{fmt.Sprintf("token-%d", service.MaxPushBatch)}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1}, nil).
		Once()
	pushLogRepo.EXPECT().
		BatchCreate(ctx, mock.MatchedBy(func(logs []*entity.PushNotificationLog) bool {
			return len(logs) == service.MaxPushBatch+1
		})).
		Return(errors.New("log table locked"))

	summary, err := srv.PushLifecycleEvent(ctx, orderUpdateEvent(customerID))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, service.MaxPushBatch, summary.Failed)
}

func TestNotificationService_PushLifecycleEvent_DeviceLookupFails(t *testing.T) {
	srv, deviceRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceRepo.EXPECT().FindActiveDevicesByCustomer(ctx, customerID).Return(nil, errors.New("db down"))

	_, err := srv.PushLifecycleEvent(ctx, orderUpdateEvent(customerID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch devices")
}
