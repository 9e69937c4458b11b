package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Customer   *AccountModel `gorm:"foreignKey:CustomerID"`
	StoreID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Store      *StoreModel   `gorm:"foreignKey:StoreID"`
	Title      string        `gorm:"type:varchar(30);not null"`
	Text       string        `gorm:"type:varchar(300);not null"`
	CreatedAt  time.Time     `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
