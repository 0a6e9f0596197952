package usecase

import (
	"context"

	"dabeli/internal/domain/service"
)

// PushSummary reports what a lifecycle push achieved.
type PushSummary struct {
	Devices        int `json:"devices"`
	Sent           int `json:"sent"`
	Failed         int `json:"failed"`
	RemovedDevices int `json:"removedDevices"`
}

// NotificationUsecase turns lifecycle events into mobile pushes.
type NotificationUsecase interface {
	// PushLifecycleEvent notifies the owning customer's devices. Admin-audience events are skipped.
	PushLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) (*PushSummary, error)
}
