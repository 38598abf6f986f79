package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access contract for wishlists.
type Repository interface {
	// Create inserts a new wishlist.
	// Returns ErrSlugTaken when the slug collides with an existing row,
	// so the service can retry with the next candidate.
	Create(ctx context.Context, w *Wishlist) error

	// FindBySlug returns the wishlist row for a slug.
	// Returns ErrWishlistNotFound when no row matches.
	FindBySlug(ctx context.Context, slug string) (*Wishlist, error)

	// ListByOwner returns the owner's wishlists newest-first, each with
	// its count of non-deleted items.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Summary, error)

	// Update persists title/description/cover/visibility and updated_at.
	// Returns ErrWishlistNotFound when the row vanished.
	Update(ctx context.Context, w *Wishlist) error

	// Delete removes the wishlist. Items, reservations and contributions
	// go with it through ON DELETE CASCADE.
	// Returns ErrWishlistNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// OwnerName resolves the display name of the wishlist's owner.
	OwnerName(ctx context.Context, ownerID uuid.UUID) (string, error)
}
