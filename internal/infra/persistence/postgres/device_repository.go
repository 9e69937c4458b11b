package postgres

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert registers a device, or rebinds a known device id to the account with the new token.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.AccountDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Omit("Account").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"account_id", "fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountDevice, error) {
	var deviceM model.AccountDeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Account").
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByAccount retrieves all devices for an account, including inactive ones.
func (repo *deviceRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error) {
	var deviceModels []*model.AccountDeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Account").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by account")
	}

	return mapModels(deviceModels, toDeviceDomain), nil
}

// FindActiveByAccountUID retrieves the active devices of the account with the external uid.
func (repo *deviceRepository) FindActiveByAccountUID(ctx context.Context, accountUID string) ([]*entity.AccountDevice, error) {
	var deviceModels []*model.AccountDeviceModel

	if err := repo.db.WithContext(ctx).
		Joins("Account").
		Where(`"Account"."uid" = ? AND account_devices.is_active = ?`, accountUID, true).
		Order("account_devices.created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by account")
	}

	return mapModels(deviceModels, toDeviceDomain), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeviceModel{}).
		Where("id = ?", id).
		Update("fcm_token", fcmToken)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Deactivate stops notifications to a device without deleting it.
func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteByFCMToken removes devices whose token the push provider rejected.
func (repo *deviceRepository) DeleteByFCMToken(ctx context.Context, fcmToken string) error {
	if err := repo.db.WithContext(ctx).
		Where("fcm_token = ?", fcmToken).
		Delete(&model.AccountDeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device by FCM token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM AccountDeviceModel to a domain AccountDevice entity.
func toDeviceDomain(data *model.AccountDeviceModel) *entity.AccountDevice {
	if data == nil {
		return nil
	}

	device := &entity.AccountDevice{
		ID:        data.ID,
		AccountID: data.AccountID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Account != nil {
		device.AccountUID = data.Account.UID
	}

	return device
}

// fromDeviceDomain converts a domain AccountDevice entity to a GORM AccountDeviceModel.
func fromDeviceDomain(data *entity.AccountDevice) *model.AccountDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AccountDeviceModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
