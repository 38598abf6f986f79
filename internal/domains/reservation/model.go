package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is the single claim slot of an item. The UNIQUE constraint
// on item_id means there is at most one row per item; cancelling flips
// is_cancelled and a later reserve reuses the row in place, so the
// constraint itself serializes concurrent reserve attempts.
type Reservation struct {
	ID             uuid.UUID  `json:"id"`
	ItemID         uuid.UUID  `json:"item_id"`
	ReserverName   string     `json:"reserver_name"`
	ReserverEmail  *string    `json:"-"`
	ReserverUserID *uuid.UUID `json:"-"`
	CancelSecret   string     `json:"-"`
	IsCancelled    bool       `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
}
