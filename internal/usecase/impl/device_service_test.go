package impl

import (
	"context"
	"testing"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	mockRepo "github.com/nadoran78/mytable/internal/mocks/repository"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	accountRepo *mockRepo.MockAccountRepository
	account     *entity.Account
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewDeviceService(deviceRepo, accountRepo)

	return deviceServiceFixtures{
		service:     service,
		deviceRepo:  deviceRepo,
		accountRepo: accountRepo,
		account: &entity.Account{
			ID:   uuid.New(),
			UID:  testCustomerUID,
			Kind: entity.AccountKindCustomer,
		},
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.accountRepo.EXPECT().FindByUID(ctx, testCustomerUID).Return(fx.account, nil)
	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(d *entity.AccountDevice) bool {
			return d.AccountID == fx.account.ID && d.DeviceID == "device-123" && d.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, testCustomerUID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, fx.account.ID, device.AccountID)
	assert.Equal(t, testCustomerUID, device.AccountUID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), testCustomerUID, &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-123",
		Platform: "windows",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestDeviceService_RegisterDevice_UnknownAccount(t *testing.T) {
	fx := createTestDeviceService(t)
	fx.accountRepo.EXPECT().FindByUID(mock.Anything, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.RegisterDevice(context.Background(), "ghost", &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-123",
		Platform: "android",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
			Return(&entity.AccountDevice{ID: deviceID, AccountUID: testCustomerUID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, testCustomerUID, deviceID, "new-token"))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
			Return(&entity.AccountDevice{ID: deviceID, AccountUID: "other"}, nil)

		err := fx.service.UpdateFCMToken(ctx, testCustomerUID, deviceID, "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceForbidden)
	})

	t.Run("missing device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, testCustomerUID, deviceID, "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
			Return(&entity.AccountDevice{ID: deviceID, AccountUID: testCustomerUID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(errors.New("db down"))

		err := fx.service.UpdateFCMToken(ctx, testCustomerUID, deviceID, "new-token")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update FCM token")
	})
}

func TestDeviceService_GetDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	devices := []*entity.AccountDevice{
		{ID: uuid.New(), AccountID: fx.account.ID, DeviceID: "a", IsActive: true},
		{ID: uuid.New(), AccountID: fx.account.ID, DeviceID: "b", IsActive: false},
	}

	fx.accountRepo.EXPECT().FindByUID(ctx, testCustomerUID).Return(fx.account, nil)
	fx.deviceRepo.EXPECT().FindByAccount(ctx, fx.account.ID).Return(devices, nil)

	result, err := fx.service.GetDevices(ctx, testCustomerUID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).
		Return(&entity.AccountDevice{ID: deviceID, AccountUID: testCustomerUID, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().Deactivate(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, testCustomerUID, deviceID))
}
