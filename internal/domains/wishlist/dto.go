package wishlist

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
)

// ========================================
// WISHLIST DTOs
// ========================================

const defaultCoverEmoji = "🎁"

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CoverEmoji  *string `json:"cover_emoji"`
	IsPublic    *bool   `json:"is_public"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.CoverEmoji, validation.Length(0, 10)),
	)
}

// Cover returns the requested cover emoji or the default.
func (r CreateRequest) Cover() string {
	if r.CoverEmoji != nil && *r.CoverEmoji != "" {
		return *r.CoverEmoji
	}
	return defaultCoverEmoji
}

// Public defaults to true: lists are shareable unless explicitly hidden.
func (r CreateRequest) Public() bool {
	if r.IsPublic != nil {
		return *r.IsPublic
	}
	return true
}

// UpdateRequest carries a partial update. Nil fields are left untouched.
// Slug is deliberately absent: it is immutable.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverEmoji  *string `json:"cover_emoji"`
	IsPublic    *bool   `json:"is_public"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.CoverEmoji, validation.Length(0, 10)),
	)
}

// Summary is one row of the owner's dashboard list.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	CoverEmoji string    `json:"cover_emoji"`
	Slug       string    `json:"slug"`
	IsPublic   bool      `json:"is_public"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Detail is the shared-page payload: the wishlist, who owns it, and its
// items in the projection appropriate to the viewer.
type Detail struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	CoverEmoji  string      `json:"cover_emoji"`
	Slug        string      `json:"slug"`
	IsPublic    bool        `json:"is_public"`
	OwnerName   string      `json:"owner_name"`
	IsOwner     bool        `json:"is_owner"`
	Items       []item.View `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
