package model

import (
	"time"

	"github.com/google/uuid"
)

// TableSpec is one group of identical restaurant tables, stored as JSON.
type TableSpec struct {
	Volume int `json:"volume"`
	Amount int `json:"amount"`
}

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Partner       *AccountModel `gorm:"foreignKey:PartnerID"`
	Storename     string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	Phone         string        `gorm:"type:varchar(20)"`
	Sido          string        `gorm:"type:varchar(50)"`
	Sigungu       string        `gorm:"type:varchar(50)"`
	Roadname      string        `gorm:"type:varchar(255)"`
	DetailAddress string        `gorm:"type:varchar(255)"`
	Description   string        `gorm:"type:text;not null"`
	IsRestaurant  bool          `gorm:"not null;default:false"`
	Tables        []TableSpec   `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
