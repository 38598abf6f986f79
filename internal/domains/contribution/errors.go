package contribution

import "errors"

// Service-level (business logic) errors
var (
	ErrNotGroupGift = errors.New("this item is not a group gift")
	ErrOwnItem      = errors.New("you cannot contribute to an item on your own wishlist")
)
