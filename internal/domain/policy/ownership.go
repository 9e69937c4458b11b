// Package policy holds the authorization and state-transition rules shared by the use cases.
// Every check here runs before a mutation and has no side effects.
package policy

import (
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
)

// RequireReservationOwner passes only when the caller booked the reservation.
func RequireReservationOwner(callerUID string, reservation *entity.Reservation) error {
	if reservation == nil || callerUID == "" || reservation.CustomerUID != callerUID {
		return domainerrors.ErrAccessOnlyRequestedCustomer
	}

	return nil
}

// RequireStoreOwner passes only when the caller owns the store.
func RequireStoreOwner(callerUID string, store *entity.Store) error {
	if store == nil || callerUID == "" || store.PartnerUID != callerUID {
		return domainerrors.ErrAccessOnlyStoreOwner
	}

	return nil
}

// RequireReservationStoreOwner passes only when the caller owns the reservation's store.
func RequireReservationStoreOwner(callerUID string, reservation *entity.Reservation) error {
	if reservation == nil || callerUID == "" || reservation.PartnerUID != callerUID {
		return domainerrors.ErrAccessOnlyStoreOwner
	}

	return nil
}

// RequireReviewWriter passes only when the caller wrote the review.
func RequireReviewWriter(callerUID string, review *entity.Review) error {
	if review == nil || callerUID == "" || review.CustomerUID != callerUID {
		return domainerrors.ErrOnlyWorksWithWriter
	}

	return nil
}

// RequireReviewWriterOrStoreOwner lets a customer act on their own review and a partner
// act on reviews of their store. Any other role combination is denied.
func RequireReviewWriterOrStoreOwner(caller entity.Identity, review *entity.Review) error {
	switch {
	case caller.IsCustomer():
		return RequireReviewWriter(caller.UID, review)
	case caller.IsPartner():
		if review == nil || review.PartnerUID != caller.UID {
			return domainerrors.ErrAccessOnlyStoreOwner
		}

		return nil
	default:
		return domainerrors.ErrAccessDenied
	}
}
