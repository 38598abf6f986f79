package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account row. PasswordHash is bcrypt and never leaves the
// service layer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AvatarURL    *string   `json:"avatar_url"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
