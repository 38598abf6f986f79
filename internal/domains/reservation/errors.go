package reservation

import "errors"

// Repository-level errors
var (
	ErrAlreadyReserved     = errors.New("item is already reserved")
	ErrNoActiveReservation = errors.New("no active reservation for this item")
)

// Service-level (business logic) errors
var (
	ErrWrongCancelSecret = errors.New("cancel secret does not match")
	ErrOwnItem           = errors.New("you cannot reserve an item on your own wishlist")
	ErrGroupGiftItem     = errors.New("group gifts are contributed to, not reserved")
)
