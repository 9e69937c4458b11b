package service

import (
	"context"
)

// ReservationMessageEvent carries one reservation notice from the API to the notification worker.
type ReservationMessageEvent struct {
	EventID        string `json:"event_id"`
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	ReservationUID string `json:"reservation_uid"`
	RecipientUID   string `json:"recipient_uid"` // Account whose devices also get a push
	Phone          string `json:"phone"`
	Text           string `json:"text"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessageEvent publishes a reservation notice for async delivery
	PublishMessageEvent(ctx context.Context, event *ReservationMessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
