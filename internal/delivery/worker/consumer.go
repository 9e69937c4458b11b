package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/delivery"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/delivery/worker/handler"
	"github.com/nadoran78/mytable/internal/domain/constants"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/infra/pubsub"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerPrefetch  = 50
	reconnectMin      = time.Second
	reconnectMax      = 30 * time.Second
	reconnectCooldown = 2 * time.Second
)

type amqpConsumer struct {
	enabled    bool
	url        string
	queue      string
	logger     *slog.Logger
	deliveryUC usecase.MessageDeliveryUsecase

	done     chan struct{}
	stopOnce sync.Once
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.MessageDeliveryUsecase
}

// NewAMQPConsumer creates the delivery that drains the reservation message queue.
// It idles unless the rabbitmq provider is configured.
func NewAMQPConsumer(params ConsumerParams) delivery.Delivery {
	cfg := params.Cfg.Notification

	c := &amqpConsumer{
		enabled:    cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ && cfg.AMQPURL != "",
		queue:      pubsub.QueueName(cfg),
		logger:     params.Logger,
		deliveryUC: params.DeliveryUC,
		done:       make(chan struct{}),
	}
	if cfg != nil {
		c.url = cfg.AMQPURL
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.stopOnce.Do(func() { close(c.done) })

			return nil
		},
	})

	return c
}

// Serve dials the broker and consumes until stopped, reconnecting with exponential backoff.
func (c *amqpConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Info("[Consumer] RabbitMQ provider not configured, consumer idle")

		return nil
	}

	backoff := reconnectMin
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("[Consumer] Failed to dial broker",
				slog.Any("error", err),
				slog.Duration("retryIn", backoff))
			if !c.sleep(ctx, backoff) {
				return nil
			}
			backoff = min(backoff*2, reconnectMax)

			continue
		}
		backoff = reconnectMin

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if err == nil {
			return nil
		}

		c.logger.Warn("[Consumer] Consume loop ended, reconnecting", slog.Any("error", err))
		if !c.sleep(ctx, reconnectCooldown) {
			return nil
		}
	}
}

// sleep waits for d and reports false when the consumer is stopping.
func (c *amqpConsumer) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-c.done:
		return false
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// consume returns nil only when the consumer is stopped.
func (c *amqpConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		c.logger.Warn("[Consumer] Failed to set QoS", slog.Any("error", err))
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "queue declare %s", c.queue)
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "queue consume %s", c.queue)
	}

	c.logger.Info("[Consumer] Consuming reservation messages", slog.String("queue", c.queue))

	for {
		select {
		case <-c.done:
			return nil
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

// handle acks delivered and malformed messages, and requeues a retryable failure once.
func (c *amqpConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var event service.ReservationMessageEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Error("[Consumer] Failed to parse reservation message", slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	requestID := handler.ExtractRequestID(ctx, d.CorrelationId, &event)
	reqLogger := c.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := c.deliveryUC.Deliver(ctx, &event); err != nil {
		requeue := handler.IsRetryable(err) && !d.Redelivered
		reqLogger.Error("[Consumer] Failed to deliver reservation message",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("requeue", requeue),
		)
		_ = d.Nack(false, requeue)

		return
	}

	_ = d.Ack(false)
}
