package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo  repository.DeviceRepository
	accountRepo repository.AccountRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, accountRepo repository.AccountRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:  deviceRepo,
		accountRepo: accountRepo,
	}
}

// RegisterDevice registers a new device or rebinds an existing device id to the account
func (s *deviceService) RegisterDevice(ctx context.Context, accountUID string, deviceInfo *usecase.DeviceInfo) (*entity.AccountDevice, error) {
	if deviceInfo.Platform != entity.PlatformIOS && deviceInfo.Platform != entity.PlatformAndroid {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("platform must be ios or android")
	}

	account, err := s.findAccount(ctx, accountUID)
	if err != nil {
		return nil, err
	}

	device := &entity.AccountDevice{
		AccountID:  account.ID,
		AccountUID: account.UID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, accountUID string, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, accountUID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetDevices retrieves every device registered by the account
func (s *deviceService) GetDevices(ctx context.Context, accountUID string) ([]*entity.AccountDevice, error) {
	account, err := s.findAccount(ctx, accountUID)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by account: %w", err)
	}

	return devices, nil
}

// DeactivateDevice stops pushes to the device
func (s *deviceService) DeactivateDevice(ctx context.Context, accountUID string, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, accountUID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}

func (s *deviceService) findAccount(ctx context.Context, accountUID string) (*entity.Account, error) {
	account, err := s.accountRepo.FindByUID(ctx, accountUID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

// ownedDevice loads the device and verifies it belongs to the account
func (s *deviceService) ownedDevice(ctx context.Context, accountUID string, deviceID uuid.UUID) (*entity.AccountDevice, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.AccountUID != accountUID {
		return nil, domainerrors.ErrDeviceForbidden
	}

	return device, nil
}
