package worker

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nadoran78/mytable/config"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/delivery/worker/handler"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/service"
	mockUC "github.com/nadoran78/mytable/internal/mocks/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingAck captures how a delivery was settled.
type recordingAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *recordingAck) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeue = requeue

	return nil
}

func (a *recordingAck) Reject(_ uint64, requeue bool) error {
	a.nacked = true
	a.requeue = requeue

	return nil
}

func newTestConsumer(t *testing.T) (*amqpConsumer, *mockUC.MockMessageDeliveryUsecase) {
	t.Helper()

	uc := mockUC.NewMockMessageDeliveryUsecase(t)

	return &amqpConsumer{
		enabled:    true,
		logger:     slog.New(slog.DiscardHandler),
		deliveryUC: uc,
		done:       make(chan struct{}),
	}, uc
}

const eventJSON = `{"event_id":"e-1","reservation_uid":"r-1","phone":"01012345678","text":"hi"}`

func TestConsumerHandle(t *testing.T) {
	t.Run("acks a delivered message", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.EXPECT().
			Deliver(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "corr-1"
			}), mock.MatchedBy(func(e *service.ReservationMessageEvent) bool {
				return e.EventID == "e-1" && e.Phone == "01012345678"
			})).
			Return(nil)

		ack := &recordingAck{}
		c.handle(context.Background(), amqp.Delivery{Acknowledger: ack, CorrelationId: "corr-1", Body: []byte(eventJSON)})

		assert.True(t, ack.acked)
		assert.False(t, ack.nacked)
	})

	t.Run("drops malformed bodies", func(t *testing.T) {
		c, _ := newTestConsumer(t)

		ack := &recordingAck{}
		c.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{")})

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})

	t.Run("requeues a retryable failure once", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("sms gateway timeout"))

		first := &recordingAck{}
		c.handle(context.Background(), amqp.Delivery{Acknowledger: first, Body: []byte(eventJSON)})
		assert.True(t, first.requeue)

		second := &recordingAck{}
		c.handle(context.Background(), amqp.Delivery{Acknowledger: second, Redelivered: true, Body: []byte(eventJSON)})
		assert.True(t, second.nacked)
		assert.False(t, second.requeue)
	})

	t.Run("drops an invalid event", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidRequest)

		ack := &recordingAck{}
		c.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{"event_id":"e-3"}`)})

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})
}

func TestConsumerIdleWithoutRabbitMQ(t *testing.T) {
	c, _ := newTestConsumer(t)
	c.enabled = false

	require.NoError(t, c.Serve(context.Background()))
}

func TestWorkerHealth(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     &config.Config{},
		Logger:     logger,
		DeliveryUC: mockUC.NewMockMessageDeliveryUsecase(t),
	})
	e := NewEcho(&config.Config{}, logger, push)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
