package repository

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert registers the device or, when the device id is known, rebinds it to the account with the new token.
	Upsert(ctx context.Context, device *entity.AccountDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountDevice, error)

	// FindByAccount retrieves all devices of an account, including inactive ones.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error)

	// FindActiveByAccountUID retrieves the active devices of the account with the external uid.
	FindActiveByAccountUID(ctx context.Context, accountUID string) ([]*entity.AccountDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// Deactivate stops notifications to a device without deleting it.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeleteByFCMToken removes devices whose token the push provider rejected.
	DeleteByFCMToken(ctx context.Context, fcmToken string) error
}
