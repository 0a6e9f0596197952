package repository

import (
	"context"

	"dabeli/internal/domain/entity"
)

// PushLogRepository records push delivery attempts made by the worker.
type PushLogRepository interface {
	BatchCreate(ctx context.Context, logs []*entity.PushNotificationLog) error
}
