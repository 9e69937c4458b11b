package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountDeviceModel is the GORM-specific struct for the 'account_devices' table.
// It represents a device registered for reservation push notifications.
type AccountDeviceModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Account   *AccountModel `gorm:"foreignKey:AccountID"`
	FCMToken  string        `gorm:"type:varchar(255);not null;index"`
	DeviceID  string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string        `gorm:"type:varchar(50);not null"`
	IsActive  bool          `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountDeviceModel) TableName() string {
	return "account_devices"
}
