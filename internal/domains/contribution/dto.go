package contribution

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ========================================
// CONTRIBUTION DTOs
// ========================================

type ContributeRequest struct {
	ContributorName  string          `json:"contributor_name"`
	ContributorEmail *string         `json:"contributor_email"`
	Amount           decimal.Decimal `json:"amount"`
}

func (r ContributeRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ContributorName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ContributorEmail, is.EmailFormat),
	); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// ContributionOut is the contribute response: the new entry plus the
// item aggregates after it landed, so the caller can render the updated
// progress without a refetch.
type ContributionOut struct {
	ID              uuid.UUID       `json:"id"`
	ItemID          uuid.UUID       `json:"item_id"`
	ContributorName string          `json:"contributor_name"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`

	TotalContributed  decimal.Decimal `json:"total_contributed"`
	ContributorsCount int             `json:"contributors_count"`
	GoalReached       bool            `json:"goal_reached"`
}
