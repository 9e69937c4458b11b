package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	pushTitle = "MyTable 예약 알림"
)

type messageDeliveryService struct {
	sms        service.SMSSender
	push       service.NotificationService
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// MessageDeliveryServiceParams holds dependencies for MessageDeliveryService, injected by Fx.
type MessageDeliveryServiceParams struct {
	fx.In

	SMS        service.SMSSender
	Push       service.NotificationService `optional:"true"`
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewMessageDeliveryService creates the worker-side delivery of reservation messages
func NewMessageDeliveryService(params MessageDeliveryServiceParams) usecase.MessageDeliveryUsecase {
	return &messageDeliveryService{
		sms:        params.SMS,
		push:       params.Push,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *messageDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver sends the SMS and, when push is configured, notifies the recipient's devices.
// Only an SMS failure is returned so the transport redelivers the event.
func (srv *messageDeliveryService) Deliver(ctx context.Context, event *service.ReservationMessageEvent) error {
	if event == nil || event.Phone == "" || event.Text == "" {
		return domainerrors.ErrInvalidRequest.WrapMessage("reservation message requires phone and text")
	}

	logger := srv.log(ctx).With(
		slog.String("eventId", event.EventID),
		slog.String("reservationUid", event.ReservationUID))

	if err := srv.sms.SendOne(ctx, event.Phone, event.Text); err != nil {
		logger.Error("Failed to send reservation SMS", slog.Any("error", err))

		return errors.Wrap(err, "failed to send reservation SMS")
	}

	logger.Info("Reservation SMS sent")

	if srv.push == nil || event.RecipientUID == "" {
		return nil
	}

	srv.pushToDevices(ctx, logger, event)

	return nil
}

func (srv *messageDeliveryService) pushToDevices(ctx context.Context, logger *slog.Logger, event *service.ReservationMessageEvent) {
	devices, err := srv.deviceRepo.FindActiveByAccountUID(ctx, event.RecipientUID)
	if err != nil {
		logger.Warn("Failed to load recipient devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"event_id":        event.EventID,
		"reservation_uid": event.ReservationUID,
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		sent, failed, batchInvalid, err := srv.push.SendBatchNotification(ctx, batch, pushTitle, event.Text, data)
		if err != nil {
			logger.Warn("Push batch failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	for _, token := range invalidTokens {
		if err := srv.deviceRepo.DeleteByFCMToken(ctx, token); err != nil {
			logger.Warn("Failed to remove invalid device token", slog.Any("error", err))
		}
	}

	logger.Info("Reservation push sent",
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalidTokens", len(invalidTokens)))
}
