package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the stored row. Removal is a soft delete: the row stays so
// reservation and contribution history survives, but every read path
// filters on is_deleted.
type Item struct {
	ID           uuid.UUID        `json:"id"`
	WishlistID   uuid.UUID        `json:"wishlist_id"`
	Name         string           `json:"name"`
	URL          *string          `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Description  *string          `json:"description"`
	Priority     int              `json:"priority"`
	IsGroupGift  bool             `json:"is_group_gift"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	IsDeleted    bool             `json:"-"`
	DeletedAt    *time.Time       `json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Contributor is one ledger entry as shown to guests: display name only,
// never email or amount.
type Contributor struct {
	Name      string    `json:"contributor_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Record is an item joined with its computed reservation and
// contribution state. This is what repositories return; projections for
// a specific viewer are built from it.
type Record struct {
	Item

	IsReserved        bool
	ReservedBy        *string
	TotalContributed  decimal.Decimal
	ContributorsCount int
	Contributors      []Contributor
}

// GoalReached reports whether a group gift has met or passed its target.
// Overflow past the target is allowed, so this is >=, not ==.
func (r *Record) GoalReached() bool {
	return r.IsGroupGift && r.TargetAmount != nil &&
		r.TotalContributed.GreaterThanOrEqual(*r.TargetAmount)
}
