package impl

import (
	"context"
	"fmt"
	"testing"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/service"
	mockRepo "github.com/nadoran78/mytable/internal/mocks/repository"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageDeliveryFixtures struct {
	service    usecase.MessageDeliveryUsecase
	sms        *mockSvc.MockSMSSender
	push       *mockSvc.MockNotificationService
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestMessageDeliveryService(t *testing.T, withPush bool) messageDeliveryFixtures {
	sms := mockSvc.NewMockSMSSender(t)
	push := mockSvc.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	params := MessageDeliveryServiceParams{
		SMS:        sms,
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	}
	if withPush {
		params.Push = push
	}

	return messageDeliveryFixtures{
		service:    NewMessageDeliveryService(params),
		sms:        sms,
		push:       push,
		deviceRepo: deviceRepo,
	}
}

func testMessageEvent() *service.ReservationMessageEvent {
	return &service.ReservationMessageEvent{
		EventID:        "evt-1",
		ReservationUID: "res-1",
		RecipientUID:   testPartnerUID,
		Phone:          testPartnerPhone,
		Text:           "Noodle House에 예약이 접수(수정)되었습니다.",
	}
}

func TestMessageDeliveryService_Deliver_SMSOnly(t *testing.T) {
	fx := createTestMessageDeliveryService(t, false)
	event := testMessageEvent()

	fx.sms.EXPECT().SendOne(mock.Anything, testPartnerPhone, event.Text).Return(nil)

	require.NoError(t, fx.service.Deliver(context.Background(), event))
	fx.deviceRepo.AssertNotCalled(t, "FindActiveByAccountUID", mock.Anything, mock.Anything)
}

func TestMessageDeliveryService_Deliver_SMSFailure(t *testing.T) {
	fx := createTestMessageDeliveryService(t, true)
	event := testMessageEvent()

	fx.sms.EXPECT().SendOne(mock.Anything, testPartnerPhone, event.Text).Return(errors.New("gateway 503"))

	err := fx.service.Deliver(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway 503")
	fx.push.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageDeliveryService_Deliver_InvalidEvent(t *testing.T) {
	fx := createTestMessageDeliveryService(t, false)

	assert.ErrorIs(t, fx.service.Deliver(context.Background(), nil), domainerrors.ErrInvalidRequest)
	assert.ErrorIs(t, fx.service.Deliver(context.Background(), &service.ReservationMessageEvent{Text: "hi"}), domainerrors.ErrInvalidRequest)
}

func TestMessageDeliveryService_Deliver_PushesAndPrunesTokens(t *testing.T) {
	fx := createTestMessageDeliveryService(t, true)
	event := testMessageEvent()

	devices := []*entity.AccountDevice{
		{FCMToken: "token-a", IsActive: true},
		{FCMToken: "token-b", IsActive: true},
	}

	fx.sms.EXPECT().SendOne(mock.Anything, testPartnerPhone, event.Text).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveByAccountUID(mock.Anything, testPartnerUID).Return(devices, nil)
	fx.push.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, pushTitle, event.Text,
			map[string]string{"event_id": "evt-1", "reservation_uid": "res-1"}).
		Return(1, 1, []string{"token-b"}, nil)
	fx.deviceRepo.EXPECT().DeleteByFCMToken(mock.Anything, "token-b").Return(nil)

	require.NoError(t, fx.service.Deliver(context.Background(), event))
}

func TestMessageDeliveryService_Deliver_BatchesLargeDeviceSets(t *testing.T) {
	fx := createTestMessageDeliveryService(t, true)
	event := testMessageEvent()

	devices := make([]*entity.AccountDevice, firebaseBatchSize+20)
	for i := range devices {
		devices[i] = &entity.AccountDevice{FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	fx.sms.EXPECT().SendOne(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveByAccountUID(mock.Anything, testPartnerUID).Return(devices, nil)
	fx.push.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(firebaseBatchSize, 0, nil, nil).Once()
	fx.push.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).Once()

	require.NoError(t, fx.service.Deliver(context.Background(), event))
}

func TestMessageDeliveryService_Deliver_DeviceLookupFailureIsIgnored(t *testing.T) {
	fx := createTestMessageDeliveryService(t, true)
	event := testMessageEvent()

	fx.sms.EXPECT().SendOne(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveByAccountUID(mock.Anything, testPartnerUID).Return(nil, errors.New("db down"))

	require.NoError(t, fx.service.Deliver(context.Background(), event))
}
