package usecase

import (
	"context"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
)

// ReservationInput carries the customer-editable booking fields.
type ReservationInput struct {
	Storename          string
	DateTime           time.Time
	UnderName          string
	Phone              string
	SpecialInstruction string
	NumberOfPeople     *int
}

// CreateReservationOutput reports the stored reservation and whether the partner was notified.
// Notified is false only for a booking without an under-name, which is stored but not announced.
type CreateReservationOutput struct {
	Reservation *entity.Reservation
	Notified    bool
}

// SweepResult summarizes one no-show sweep.
type SweepResult struct {
	Cutoff  time.Time
	Matched int
	Swept   int
	Failed  int
}

// NoShowSweeper moves confirmed reservations whose day has passed to NO_SHOW.
type NoShowSweeper interface {
	SweepNoShows(ctx context.Context) (*SweepResult, error)
}

// CustomerReservationUsecase defines the customer side of the reservation lifecycle.
type CustomerReservationUsecase interface {
	Create(ctx context.Context, customerUID string, input *ReservationInput) (*CreateReservationOutput, error)
	ListMine(ctx context.Context, customerUID string, page entity.PageRequest) (entity.Page[*entity.Reservation], error)
	GetForCustomer(ctx context.Context, customerUID, reservationUID string) (*entity.Reservation, error)
	// Update rewrites the booking fields and puts the reservation back to WAITING.
	Update(ctx context.Context, customerUID, reservationUID string, input *ReservationInput) (*entity.Reservation, error)
	Cancel(ctx context.Context, customerUID, reservationUID string) (*entity.Reservation, error)
	// CheckInQR renders the PNG the customer shows at the kiosk.
	CheckInQR(ctx context.Context, customerUID, reservationUID string) ([]byte, error)
}

// PartnerReservationUsecase defines the store owner side of the reservation lifecycle.
type PartnerReservationUsecase interface {
	GetForPartner(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error)
	Confirm(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error)
	Reject(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error)
	ArrivalCheck(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error)
	// ArrivalCheckByQR resolves a scanned check-in code at the given store and arrival-checks it.
	ArrivalCheckByQR(ctx context.Context, partnerUID, storename, qrData string) (*entity.Reservation, error)
	// ListByStore lists reservations dated within [startDate, end of endDate].
	ListByStore(ctx context.Context, partnerUID, storename string, startDate, endDate time.Time, page entity.PageRequest) (entity.Page[*entity.Reservation], error)
	// SearchByKiosk finds confirmed reservations by exact under-name and phone.
	SearchByKiosk(ctx context.Context, partnerUID, storename, underName, phone string, page entity.PageRequest) (entity.Page[*entity.Reservation], error)
}

// ReservationUsecase is the complete reservation lifecycle engine.
type ReservationUsecase interface {
	CustomerReservationUsecase
	PartnerReservationUsecase
	NoShowSweeper
}
