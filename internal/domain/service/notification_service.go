package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	SendOne(ctx context.Context, phone, text string) error
}

// ReservationNotice is one message addressed to a reservation party.
type ReservationNotice struct {
	ReservationUID string
	RecipientUID   string
	Phone          string
	Text           string
}

// DeliveryResult reports whether a notice was handed to the transport.
type DeliveryResult struct {
	Accepted bool
	EventID  string
	Err      error
}

// NotificationDispatcher is informed of lifecycle transitions. It never fails the caller;
// problems are reported in the result.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notice ReservationNotice) DeliveryResult
}
