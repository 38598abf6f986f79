package wishlist

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is the list record. Slug is assigned at creation and never
// changes afterwards, so shared links stay valid across renames.
type Wishlist struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CoverEmoji  string    `json:"cover_emoji"`
	Slug        string    `json:"slug"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
