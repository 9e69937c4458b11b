package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel is the GORM-specific struct for the 'reservations' table.
// Version is bumped by every status write and guards concurrent transitions.
type ReservationModel struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UID                string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	Customer           *AccountModel `gorm:"foreignKey:CustomerID"`
	StoreID            uuid.UUID     `gorm:"type:uuid;not null;index:idx_reservations_kiosk,priority:1"`
	Store              *StoreModel   `gorm:"foreignKey:StoreID"`
	DateTime           time.Time     `gorm:"type:timestamptz;not null;index:idx_reservations_status_date_time,priority:2"`
	UnderName          string        `gorm:"type:varchar(100);not null;index:idx_reservations_kiosk,priority:2"`
	Phone              string        `gorm:"type:varchar(20);not null;index:idx_reservations_kiosk,priority:3"`
	SpecialInstruction string        `gorm:"type:text"`
	NumberOfPeople     *int
	Status             string `gorm:"type:varchar(16);not null;index:idx_reservations_status_date_time,priority:1;index:idx_reservations_kiosk,priority:4"`
	Version            int64  `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
