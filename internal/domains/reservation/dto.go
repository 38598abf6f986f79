package reservation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// RESERVATION DTOs
// ========================================

type ReserveRequest struct {
	ReserverName  string  `json:"reserver_name"`
	ReserverEmail *string `json:"reserver_email"`
}

func (r ReserveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReserverName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ReserverEmail, is.EmailFormat),
	)
}

// CancelRequest carries the capability token handed out at reserve time.
// Possession of the secret is the only authorization for cancelling; no
// account is required to reserve, so there is no identity to check.
type CancelRequest struct {
	CancelSecret string `json:"cancel_secret"`
}

func (r CancelRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CancelSecret, validation.Required),
	)
}

// ReservationOut is the reserve response. CancelSecret appears here and
// only here: the creator stores it client-side to cancel later.
type ReservationOut struct {
	ID           uuid.UUID `json:"id"`
	ItemID       uuid.UUID `json:"item_id"`
	ReserverName string    `json:"reserver_name"`
	CancelSecret string    `json:"cancel_secret"`
	CreatedAt    time.Time `json:"created_at"`
}
