package item

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ========================================
// ITEM DTOs
// ========================================

const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type CreateRequest struct {
	Name         string           `json:"name"`
	URL          *string          `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Description  *string          `json:"description"`
	Priority     *int             `json:"priority"`
	IsGroupGift  bool             `json:"is_group_gift"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
}

func (r CreateRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Priority, validation.Min(PriorityLow), validation.Max(PriorityHigh)),
	); err != nil {
		return err
	}
	if r.IsGroupGift && (r.TargetAmount == nil || !r.TargetAmount.IsPositive()) {
		return errors.New("target_amount must be positive for a group gift")
	}
	return nil
}

// PriorityOrDefault returns the requested priority, defaulting to medium.
func (r CreateRequest) PriorityOrDefault() int {
	if r.Priority != nil {
		return *r.Priority
	}
	return PriorityMedium
}

// UpdateRequest carries a partial update. Nil fields are left untouched.
type UpdateRequest struct {
	Name         *string          `json:"name"`
	URL          *string          `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Description  *string          `json:"description"`
	Priority     *int             `json:"priority"`
	IsGroupGift  *bool            `json:"is_group_gift"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 300)),
		validation.Field(&r.Priority, validation.Min(PriorityLow), validation.Max(PriorityHigh)),
	)
}

// View is the read projection of an item. The same struct serves both
// audiences; BuildView blanks the identity-bearing fields for the owner
// so the privacy rule lives in exactly one place.
type View struct {
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
	CreatedAt    time.Time        `json:"created_at"`

	IsReserved        bool            `json:"is_reserved"`
	TotalContributed  decimal.Decimal `json:"total_contributed"`
	ContributorsCount int             `json:"contributors_count"`
	GoalReached       bool            `json:"goal_reached"`

	// Guest projection only. The owner never receives these.
	ReservedBy   *string       `json:"reserved_by,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
}

// BuildView projects a record for a viewer. Owners get aggregates only;
// guests additionally see who reserved and who chipped in (names, never
// amounts or emails).
func BuildView(rec *Record, isOwner bool) View {
	v := View{
		ID:                rec.ID,
		WishlistID:        rec.WishlistID,
		Name:              rec.Name,
		URL:               rec.URL,
		Price:             rec.Price,
		ImageURL:          rec.ImageURL,
		Description:       rec.Description,
		Priority:          rec.Priority,
		IsGroupGift:       rec.IsGroupGift,
		TargetAmount:      rec.TargetAmount,
		CreatedAt:         rec.CreatedAt,
		IsReserved:        rec.IsReserved,
		TotalContributed:  rec.TotalContributed,
		ContributorsCount: rec.ContributorsCount,
		GoalReached:       rec.GoalReached(),
	}

	if !isOwner {
		v.ReservedBy = rec.ReservedBy
		v.Contributors = rec.Contributors
	}

	return v
}
