package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the data access contract for reservations.
type Repository interface {
	// Reserve atomically claims the item. Exactly one of any number of
	// concurrent calls for the same item succeeds; the rest get
	// ErrAlreadyReserved. The decision is made by a single conditional
	// write, never a read-then-write pair.
	Reserve(ctx context.Context, res *Reservation) error

	// Cancel releases the active reservation on an item if the caller
	// presents the matching cancel secret.
	// Returns ErrNoActiveReservation when nothing is reserved and
	// ErrWrongCancelSecret when the secret does not match.
	Cancel(ctx context.Context, itemID uuid.UUID, cancelSecret string) error

	// PruneCancelled deletes cancelled reservation rows created before
	// the cutoff and reports how many went. Active claims are never
	// touched.
	PruneCancelled(ctx context.Context, cutoff time.Time) (int, error)
}
