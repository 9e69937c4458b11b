package notification

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventDispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// EventDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type EventDispatcherParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEventDispatcher hands reservation notices to the worker through the event publisher.
func NewEventDispatcher(params EventDispatcherParams) service.NotificationDispatcher {
	return &eventDispatcher{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Dispatch publishes the notice. Errors and panics from the transport are reported in
// the result and never reach the caller.
func (d *eventDispatcher) Dispatch(ctx context.Context, notice service.ReservationNotice) (result service.DeliveryResult) {
	event := &service.ReservationMessageEvent{
		EventID:        uuid.NewString(),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		ReservationUID: notice.ReservationUID,
		RecipientUID:   notice.RecipientUID,
		Phone:          notice.Phone,
		Text:           notice.Text,
	}
	result.EventID = event.EventID

	defer func() {
		if r := recover(); r != nil {
			result.Accepted = false
			result.Err = errors.Errorf("publisher panicked: %v", r)
		}
	}()

	if notice.Phone == "" {
		result.Err = errors.New("notice has no recipient phone")

		return result
	}

	if err := d.publisher.PublishMessageEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, d.logger).Error("Failed to publish reservation message",
			slog.String("event_id", event.EventID),
			slog.String("reservation_uid", notice.ReservationUID),
			slog.Any("error", err))
		result.Err = err

		return result
	}

	result.Accepted = true

	return result
}
