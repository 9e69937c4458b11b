package repository

import (
	"context"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReservationNotFound is returned when no reservation has the given uid.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrStaleReservation is returned when a versioned write matched no row.
	ErrStaleReservation = errors.New("reservation was modified concurrently")
)

// ReservationRepository defines persistence for reservations.
type ReservationRepository interface {
	// Create persists a new reservation at version 1.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByUID retrieves a reservation with its store projection.
	FindByUID(ctx context.Context, uid string) (*entity.Reservation, error)

	// Save writes the mutable fields and status if the stored version still equals reservation.Version,
	// then bumps reservation.Version. ErrStaleReservation when the version moved.
	Save(ctx context.Context, reservation *entity.Reservation) error

	// FindByCustomer lists a customer's reservations ordered by dateTime.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Reservation], error)

	// FindByStoreBetween lists a store's reservations with from <= dateTime <= to,
	// ordered by dateTime then createdAt.
	FindByStoreBetween(ctx context.Context, storeID uuid.UUID, from, to time.Time, page entity.PageRequest) (entity.Page[*entity.Reservation], error)

	// FindAllByUnderNameAndPhoneAndStoreAndStatus is the kiosk lookup, ordered by dateTime.
	FindAllByUnderNameAndPhoneAndStoreAndStatus(ctx context.Context, underName, phone string, storeID uuid.UUID, status entity.ReservationStatus, page entity.PageRequest) (entity.Page[*entity.Reservation], error)

	// FindAllByStatusAndDateTimeBefore returns every reservation in status dated strictly before the instant.
	FindAllByStatusAndDateTimeBefore(ctx context.Context, status entity.ReservationStatus, before time.Time) ([]*entity.Reservation, error)

	// ExistsByCustomerAndStore reports whether the customer ever booked the store.
	ExistsByCustomerAndStore(ctx context.Context, customerID, storeID uuid.UUID) (bool, error)

	// Delete removes the reservation.
	Delete(ctx context.Context, reservation *entity.Reservation) error
}
