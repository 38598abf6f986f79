package item

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for items. All operations
// are owner-scoped: the wishlist is addressed by slug and the caller must
// own it.
type Service interface {
	// Add creates an item on the caller's wishlist.
	Add(ctx context.Context, slug string, callerID uuid.UUID, req CreateRequest) (*View, error)

	// Update applies a partial update to an item.
	Update(ctx context.Context, slug string, itemID, callerID uuid.UUID, req UpdateRequest) (*View, error)

	// Remove soft-deletes an item.
	Remove(ctx context.Context, slug string, itemID, callerID uuid.UUID) error
}
