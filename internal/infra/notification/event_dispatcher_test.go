package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/service"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestDispatcher(t *testing.T) (service.NotificationDispatcher, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)

	return NewEventDispatcher(EventDispatcherParams{
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), publisher
}

func testNotice() service.ReservationNotice {
	return service.ReservationNotice{
		ReservationUID: "res-1",
		RecipientUID:   "partner-1",
		Phone:          "010-1111-2222",
		Text:           "hello",
	}
}

func TestEventDispatcher_Dispatch_Publishes(t *testing.T) {
	dispatcher, publisher := newTestDispatcher(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishMessageEvent(ctx, mock.MatchedBy(func(e *service.ReservationMessageEvent) bool {
			return e.EventID != "" &&
				e.RequestID == "req-42" &&
				e.ReservationUID == "res-1" &&
				e.RecipientUID == "partner-1" &&
				e.Phone == "010-1111-2222" &&
				e.Text == "hello"
		})).
		Return(nil)

	result := dispatcher.Dispatch(ctx, testNotice())
	assert.True(t, result.Accepted)
	assert.NotEmpty(t, result.EventID)
	assert.NoError(t, result.Err)
}

func TestEventDispatcher_Dispatch_PublishFailure(t *testing.T) {
	dispatcher, publisher := newTestDispatcher(t)
	publisher.EXPECT().PublishMessageEvent(mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	result := dispatcher.Dispatch(context.Background(), testNotice())
	assert.False(t, result.Accepted)
	assert.EqualError(t, result.Err, "broker unavailable")
}

func TestEventDispatcher_Dispatch_RecoversPanics(t *testing.T) {
	dispatcher, publisher := newTestDispatcher(t)
	publisher.EXPECT().PublishMessageEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.ReservationMessageEvent) error {
			panic("nil channel")
		})

	var result service.DeliveryResult
	assert.NotPanics(t, func() {
		result = dispatcher.Dispatch(context.Background(), testNotice())
	})
	assert.False(t, result.Accepted)
	assert.ErrorContains(t, result.Err, "nil channel")
}

func TestEventDispatcher_Dispatch_MissingPhone(t *testing.T) {
	dispatcher, publisher := newTestDispatcher(t)

	notice := testNotice()
	notice.Phone = ""

	result := dispatcher.Dispatch(context.Background(), notice)
	assert.False(t, result.Accepted)
	assert.Error(t, result.Err)
	publisher.AssertNotCalled(t, "PublishMessageEvent", mock.Anything, mock.Anything)
}
