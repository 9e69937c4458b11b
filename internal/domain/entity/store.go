package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the structured location of a store.
type Address struct {
	Sido          string // Region.
	Sigungu       string // Sub-region.
	Roadname      string
	DetailAddress string
}

// Table describes one group of identical tables in a restaurant.
type Table struct {
	Volume int // Seats per table.
	Amount int // Number of such tables.
}

// RestaurantDetail is the optional payload of a store that takes party-sized bookings.
type RestaurantDetail struct {
	Tables []Table
}

// MaxTableVolume returns the seats of the largest table, or 0 when none are registered.
func (r *RestaurantDetail) MaxTableVolume() int {
	if r == nil {
		return 0
	}

	maxVolume := 0
	for _, t := range r.Tables {
		if t.Amount > 0 && t.Volume > maxVolume {
			maxVolume = t.Volume
		}
	}

	return maxVolume
}

// Store is owned by exactly one partner and identified externally by its storename.
type Store struct {
	ID           uuid.UUID
	PartnerID    uuid.UUID
	PartnerUID   string // Owner's external uid, loaded with the store.
	PartnerPhone string // Owner's phone, used for reservation notices.
	Storename    string
	Phone        string
	Address      Address
	Description  string
	Restaurant   *RestaurantDetail // Nil for a plain store.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
