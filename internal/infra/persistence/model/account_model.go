// Package model contains the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// Customers and partners share the table and are told apart by Kind.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UID          string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Kind         string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_accounts_kind_email,priority:1"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_kind_email,priority:2"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Birth        time.Time `gorm:"type:date"`
	Roles        []string  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
