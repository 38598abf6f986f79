package reservation

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for reservations. viewerID
// is nil for anonymous callers; reserving never requires an account.
type Service interface {
	// Reserve claims an item for the named guest and returns the
	// reservation with its cancel secret. Exactly one of N concurrent
	// calls on the same item succeeds; the rest get ErrAlreadyReserved.
	Reserve(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req ReserveRequest) (*ReservationOut, error)

	// Cancel releases a reservation. Authorization is possession of the
	// cancel secret, nothing else; the wishlist owner cannot force it.
	Cancel(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req CancelRequest) error
}
