package wishlist

import "errors"

// Repository-level errors
var (
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrSlugTaken        = errors.New("slug already in use")
)

// Service-level (business logic) errors
var (
	// ErrNotOwner means the caller is authenticated but does not own the
	// wishlist it is trying to modify.
	ErrNotOwner = errors.New("you do not own this wishlist")
)
