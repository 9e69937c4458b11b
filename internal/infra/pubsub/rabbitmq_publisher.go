package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue is the durable queue reservation messages travel through.
const DefaultQueue = "reservation.messages"

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue.
// The connection is dialed lazily and re-dialed after the broker drops it.
type rabbitMQPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQPublisher creates a publisher and declares the queue once to fail fast on bad settings
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &rabbitMQPublisher{url: url, queue: queue, logger: logger}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.channel(); err != nil {
		return nil, err
	}

	return p, nil
}

// channel returns an open channel, reconnecting when needed. Caller holds mu.
func (p *rabbitMQPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, errors.Wrap(err, "rabbitmq dial failed")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq channel open failed")
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()

		return nil, errors.Wrapf(err, "rabbitmq queue declare %s failed", p.queue)
	}

	p.ch = ch

	return ch, nil
}

// PublishMessageEvent publishes the event as a persistent JSON message on the default exchange
func (p *rabbitMQPublisher) PublishMessageEvent(ctx context.Context, event *service.ReservationMessageEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Body:          body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("queue", p.queue),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
