package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted at registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// AccountDevice is a mobile device registered for reservation push notifications.
type AccountDevice struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"account_id"`
	AccountUID string    `json:"account_uid"`
	FCMToken   string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	DeviceID   string    `json:"device_id"` // Client-side identifier, unique per device.
	Platform   string    `json:"platform"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
