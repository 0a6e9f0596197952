package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var supportedPlatforms = map[string]bool{"ios": true, "android": true, "web": true}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice stores a new device, or refreshes the token when the
// customer already registered the same device id.
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	if err := validateDeviceInfo(deviceInfo); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer devices")
	}

	if idx := slices.IndexFunc(devices, func(d *entity.CustomerDevice) bool {
		return d.DeviceID == deviceInfo.DeviceID
	}); idx >= 0 {
		known := devices[idx]
		if err := s.deviceRepo.UpdateFCMToken(ctx, known.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to refresh device token")
		}
		known.FCMToken = deviceInfo.FCMToken
		known.IsActive = true

		return known, nil
	}

	device := &entity.CustomerDevice{
		CustomerID: customerID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   strings.ToLower(deviceInfo.Platform),
		IsActive:   true,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	s.log(ctx).Info("Device registered",
		slog.String("customer_id", customerID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, customerID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.Invalid("fcmToken", "FCM token is required")
	}

	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken), "failed to update device token")
}

// GetCustomerDevices lists the devices that currently receive pushes.
func (s *deviceService) GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer devices")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.DeleteDevice(ctx, deviceID), "failed to remove device")
}

func (s *deviceService) ownedDevice(ctx context.Context, customerID, deviceID uuid.UUID) (*entity.CustomerDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device")
	}

	if device.CustomerID != customerID {
		return nil, domainerrors.ErrDeviceOwnershipViolation
	}

	return device, nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	var fields domainerrors.FieldCollector
	fields.Check(strings.TrimSpace(info.FCMToken) != "", "fcmToken", "FCM token is required")
	fields.Check(strings.TrimSpace(info.DeviceID) != "", "deviceId", "Device ID is required")
	fields.Check(supportedPlatforms[strings.ToLower(info.Platform)], "platform", "Platform must be ios, android or web")

	return fields.Err()
}
