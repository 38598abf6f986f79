package item

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the data access contract for items and their
// computed reservation/contribution state.
type Repository interface {
	// Create inserts a new item.
	Create(ctx context.Context, it *Item) error

	// FindActive returns a non-deleted item scoped to a wishlist.
	// Returns ErrItemNotFound when the item is missing, deleted, or
	// belongs to a different wishlist.
	FindActive(ctx context.Context, wishlistID, itemID uuid.UUID) (*Item, error)

	// Update persists the mutable item fields.
	// Returns ErrItemNotFound when the row vanished.
	Update(ctx context.Context, it *Item) error

	// SoftDelete marks the item deleted, keeping its history.
	// Returns ErrItemNotFound when no active row matches.
	SoftDelete(ctx context.Context, wishlistID, itemID uuid.UUID) error

	// GetRecord returns one active item with its computed state and
	// contributor names. Returns ErrItemNotFound when no active row
	// matches.
	GetRecord(ctx context.Context, wishlistID, itemID uuid.UUID) (*Record, error)

	// ListRecords returns all active items of a wishlist with their
	// computed state, sorted priority high-to-low then oldest first.
	ListRecords(ctx context.Context, wishlistID uuid.UUID) ([]Record, error)

	// PurgeDeleted hard-deletes items soft-deleted before the cutoff
	// that have no contributions, and reports how many went. Items with
	// ledger entries are kept for audit.
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int, error)
}
