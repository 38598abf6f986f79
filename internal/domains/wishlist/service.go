package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for wishlists.
type Service interface {
	// Create makes a wishlist for the owner, generating a unique slug
	// from the title.
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*Wishlist, error)

	// List returns the caller's wishlists, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]Summary, error)

	// GetBySlug returns the shared-page payload. viewerID is nil for
	// anonymous callers. A private wishlist read by anyone but its owner
	// returns ErrWishlistNotFound, indistinguishable from a missing slug.
	GetBySlug(ctx context.Context, slug string, viewerID *uuid.UUID) (*Detail, error)

	// Update applies a partial update. Returns ErrNotOwner when the
	// caller does not own the wishlist.
	Update(ctx context.Context, slug string, callerID uuid.UUID, req UpdateRequest) (*Wishlist, error)

	// Delete removes the wishlist and everything under it.
	// Returns ErrNotOwner when the caller does not own the wishlist.
	Delete(ctx context.Context, slug string, callerID uuid.UUID) error
}
