package usecase

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/service"
)

// MessageDeliveryUsecase delivers queued reservation notices to their recipient.
type MessageDeliveryUsecase interface {
	// Deliver sends the SMS and mirrors it as a push to the recipient's active devices.
	Deliver(ctx context.Context, event *service.ReservationMessageEvent) error
}
