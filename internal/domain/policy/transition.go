package policy

import (
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
)

// Event is a reservation lifecycle trigger.
type Event string

const (
	EventUpdate  Event = "update"
	EventCancel  Event = "cancel"
	EventConfirm Event = "confirm"
	EventReject  Event = "reject"
	EventArrive  Event = "arrive"
	EventSweep   Event = "sweep"
)

var eventTargets = map[Event]entity.ReservationStatus{
	EventUpdate:  entity.ReservationStatusWaiting,
	EventCancel:  entity.ReservationStatusCancel,
	EventConfirm: entity.ReservationStatusConfirm,
	EventReject:  entity.ReservationStatusDenied,
	EventArrive:  entity.ReservationStatusArrived,
	EventSweep:   entity.ReservationStatusNoShow,
}

// Transitions decides which source states an event may leave.
//
// In permissive mode every event is accepted from any state except the sweep,
// which only ever moves CONFIRM to NO_SHOW. Strict mode only allows the edges of
// the lifecycle table: confirm and reject from WAITING, arrival from CONFIRM,
// update and cancel from a non-terminal state.
type Transitions struct {
	Strict bool
}

// Apply validates the event against the reservation's current status and sets the target status.
func (t Transitions) Apply(reservation *entity.Reservation, event Event) error {
	target, ok := eventTargets[event]
	if !ok {
		return domainerrors.ErrInvalidStatusTransition
	}

	if !t.allowed(reservation.Status, event) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(
			string(event) + " is not allowed from " + reservation.Status.String())
	}

	reservation.Status = target

	return nil
}

func (t Transitions) allowed(from entity.ReservationStatus, event Event) bool {
	if event == EventSweep {
		return from == entity.ReservationStatusConfirm
	}
	if !t.Strict {
		return true
	}

	switch event {
	case EventConfirm, EventReject:
		return from == entity.ReservationStatusWaiting
	case EventArrive:
		return from == entity.ReservationStatusConfirm
	case EventUpdate, EventCancel:
		return !from.IsTerminal()
	default:
		return false
	}
}
