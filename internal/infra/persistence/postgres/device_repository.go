package postgres

import (
	"context"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"
	"dabeli/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// deviceRepository stores the phones and browsers customers registered for push notifications.
type deviceRepository struct {
	q *query.Query
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		q: query.Use(db),
	}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.CustomerDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.q.CustomerDeviceModel.WithContext(ctx).Create(deviceM)
	switch {
	case err == nil:
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrCustomerNotFound
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("device id, platform and token are required")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	*device = *toDeviceDomain(deviceM)

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDevice, error) {
	deviceM, err := repo.q.CustomerDeviceModel.WithContext(ctx).
		Where(repo.q.CustomerDeviceModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrapf(err, "failed to load device %s", id)
	}

	return toDeviceDomain(deviceM), nil
}

func (repo *deviceRepository) FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	return repo.list(ctx, repo.q.CustomerDeviceModel.CustomerID.Eq(customerID))
}

// FindActiveDevicesByCustomer returns the devices a lifecycle push should reach.
func (repo *deviceRepository) FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	d := repo.q.CustomerDeviceModel

	return repo.list(ctx, d.CustomerID.Eq(customerID), d.IsActive.Is(true))
}

func (repo *deviceRepository) list(ctx context.Context, conds ...gen.Condition) ([]*entity.CustomerDevice, error) {
	deviceModels, err := repo.q.CustomerDeviceModel.WithContext(ctx).
		Where(conds...).
		Order(repo.q.CustomerDeviceModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.CustomerDevice, len(deviceModels))
	for i, deviceM := range deviceModels {
		devices[i] = toDeviceDomain(deviceM)
	}

	return devices, nil
}

// UpdateFCMToken stores a refreshed token and marks the device reachable again.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	d := repo.q.CustomerDeviceModel

	result, err := d.WithContext(ctx).
		Where(d.ID.Eq(deviceID)).
		UpdateSimple(
			d.FCMToken.Value(fcmToken),
			d.IsActive.Value(true),
			d.UpdatedAt.Value(time.Now()),
		)

	return deviceAffected(result, err, "failed to update device token")
}

// DeleteDevice soft deletes the device so it stops receiving pushes.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.CustomerDeviceModel.WithContext(ctx).
		Where(repo.q.CustomerDeviceModel.ID.Eq(id)).
		Delete()

	return deviceAffected(result, err, "failed to delete device")
}

func deviceAffected(result gen.ResultInfo, err error, details string) error {
	if err != nil {
		return errors.Wrap(err, details)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(data *model.CustomerDeviceModel) *entity.CustomerDevice {
	if data == nil {
		return nil
	}

	return &entity.CustomerDevice{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.CustomerDevice) *model.CustomerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.CustomerDeviceModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
