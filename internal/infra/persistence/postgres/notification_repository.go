package postgres

import (
	"context"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pushLogBatchSize = 100

// pushLogRepository implements the repository.PushLogRepository interface.
type pushLogRepository struct {
	db *gorm.DB
}

// NewPushLogRepository is the constructor for pushLogRepository.
func NewPushLogRepository(db *gorm.DB) repository.PushLogRepository {
	return &pushLogRepository{db: db}
}

// BatchCreate persists push attempts in chunks.
func (repo *pushLogRepository) BatchCreate(ctx context.Context, logs []*entity.PushNotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.PushNotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, &model.PushNotificationLogModel{
			ID:           log.ID,
			EventName:    log.EventName,
			ReferenceID:  log.ReferenceID,
			CustomerID:   log.CustomerID,
			DeviceID:     log.DeviceID,
			Status:       string(log.Status),
			ErrorMessage: log.ErrorMessage,
			SentAt:       log.SentAt,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, pushLogBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to create push notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}
