package item

import "errors"

// Repository-level errors. A soft-deleted item is indistinguishable from
// a missing one on every read path, so not-found covers both.
var (
	ErrItemNotFound = errors.New("item not found")
)
