package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusWaiting ReservationStatus = "WAITING"
	ReservationStatusConfirm ReservationStatus = "CONFIRM"
	ReservationStatusCancel  ReservationStatus = "CANCEL"
	ReservationStatusDenied  ReservationStatus = "DENIED"
	ReservationStatusArrived ReservationStatus = "ARRIVED"
	ReservationStatusNoShow  ReservationStatus = "NO_SHOW"
)

var reservationStatusMessages = map[ReservationStatus]string{
	ReservationStatusWaiting: "확정 대기",
	ReservationStatusConfirm: "확정",
	ReservationStatusCancel:  "취소",
	ReservationStatusDenied:  "거절",
	ReservationStatusArrived: "실행",
	ReservationStatusNoShow:  "미실행",
}

// String returns the string representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the six lifecycle states.
func (s ReservationStatus) IsValid() bool {
	_, ok := reservationStatusMessages[s]

	return ok
}

// IsTerminal reports whether no further transition leaves this state.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case ReservationStatusCancel, ReservationStatusDenied, ReservationStatusArrived, ReservationStatusNoShow:
		return true
	default:
		return false
	}
}

// Message returns the customer-facing label used in notification texts.
func (s ReservationStatus) Message() string {
	return reservationStatusMessages[s]
}

// Reservation is a customer's booking at a store.
// Customer and store references are fixed at creation.
type Reservation struct {
	ID          uuid.UUID
	UID         string // Externally visible identity.
	CustomerID  uuid.UUID
	CustomerUID string
	StoreID     uuid.UUID

	// Read-side projections of the store, filled by the repository.
	Storename    string
	PartnerUID   string
	PartnerPhone string

	DateTime           time.Time
	UnderName          string
	Phone              string
	SpecialInstruction string
	NumberOfPeople     *int // Set only for restaurant bookings.

	Status    ReservationStatus
	Version   int64 // Optimistic concurrency counter, bumped on every status write.
	CreatedAt time.Time
	UpdatedAt time.Time
}
