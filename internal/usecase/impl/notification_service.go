package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"go.uber.org/fx"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	pushLogRepo     repository.PushLogRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	PushLogRepo     repository.PushLogRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		pushLogRepo:     params.PushLogRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PushLifecycleEvent sends a status push to every active device of the owning customer
func (s *notificationService) PushLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) (*usecase.PushSummary, error) {
	summary := &usecase.PushSummary{}

	msg, ok := pushMessageFor(event)
	if !ok {
		return summary, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, event.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}

	summary.Devices = len(devices)
	if len(devices) == 0 {
		return summary, nil
	}

	// Collect FCM tokens
	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.CustomerDevice, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	var (
		invalidTokens []string
		pushLogs      []*entity.PushNotificationLog
	)

	for batch := range slices.Chunk(tokens, service.MaxPushBatch) {
		result, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			// Log error but continue with other batches
			s.log(ctx).Warn("Push batch failed", slog.Int("tokens", len(batch)), slog.Any("error", err))
			summary.Failed += len(batch)
			pushLogs = append(pushLogs, buildPushLogs(event, batch, deviceMap, nil, err.Error())...)

			continue
		}

		summary.Sent += result.SuccessCount
		summary.Failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
		pushLogs = append(pushLogs, buildPushLogs(event, batch, deviceMap, result.InvalidTokens, "")...)
	}

	if len(pushLogs) > 0 {
		if err := s.pushLogRepo.BatchCreate(ctx, pushLogs); err != nil {
			// Log error but don't fail the entire operation
			s.log(ctx).Warn("Failed to record push logs", slog.Any("error", err))
		}
	}

	// Handle invalid tokens - soft delete devices
	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}

		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.log(ctx).Warn("Failed to remove invalid device", slog.String("device_id", device.ID.String()), slog.Any("error", err))

			continue
		}
		summary.RemovedDevices++
	}

	s.log(ctx).Info("Lifecycle push delivered",
		slog.String("event", string(event.Name)),
		slog.String("reference_id", event.ReferenceID.String()),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("removed_devices", summary.RemovedDevices),
	)

	return summary, nil
}

// pushMessageFor builds the push content. Admin-audience events have no mobile push.
func pushMessageFor(event *service.LifecycleEvent) (service.PushMessage, bool) {
	data := map[string]string{
		"event":        string(event.Name),
		"reference_id": event.ReferenceID.String(),
		"status":       event.Status,
	}

	switch event.Name {
	case service.EventOrderUpdate:
		return service.PushMessage{
			Title: "Order update",
			Body:  fmt.Sprintf("Your order is now %s", event.Status),
			Data:  data,
		}, true
	case service.EventCateringUpdate:
		return service.PushMessage{
			Title: "Catering request update",
			Body:  fmt.Sprintf("Your catering request is now %s", event.Status),
			Data:  data,
		}, true
	default:
		return service.PushMessage{}, false
	}
}

func buildPushLogs(
	event *service.LifecycleEvent,
	batch []string,
	deviceMap map[string]*entity.CustomerDevice,
	invalidTokens []string,
	batchError string,
) []*entity.PushNotificationLog {
	sentAt := time.Now()
	logs := make([]*entity.PushNotificationLog, 0, len(batch))

	for _, token := range batch {
		device := deviceMap[token]
		status := entity.PushStatusSent
		errorMsg := batchError

		if batchError != "" {
			status = entity.PushStatusFailed
		} else if slices.Contains(invalidTokens, token) {
			status = entity.PushStatusFailed
			errorMsg = "invalid or unregistered token"
		}

		logs = append(logs, &entity.PushNotificationLog{
			EventName:    string(event.Name),
			ReferenceID:  event.ReferenceID,
			CustomerID:   device.CustomerID,
			DeviceID:     device.ID,
			Status:       status,
			ErrorMessage: errorMsg,
			SentAt:       sentAt,
		})
	}

	return logs
}
