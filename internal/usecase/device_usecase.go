package usecase

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or rebinds an existing device id to the caller
	RegisterDevice(ctx context.Context, accountUID string, deviceInfo *DeviceInfo) (*entity.AccountDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, accountUID string, deviceID uuid.UUID, fcmToken string) error

	// GetDevices retrieves all devices registered by the caller
	GetDevices(ctx context.Context, accountUID string) ([]*entity.AccountDevice, error)

	// DeactivateDevice stops notifications to a device
	DeactivateDevice(ctx context.Context, accountUID string, deviceID uuid.UUID) error
}
