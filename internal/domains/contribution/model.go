package contribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contribution is one ledger entry. Entries are append-only: never
// updated or deleted once recorded, so the aggregates computed over them
// are always exact.
type Contribution struct {
	ID                uuid.UUID       `json:"id"`
	ItemID            uuid.UUID       `json:"item_id"`
	ContributorName   string          `json:"contributor_name"`
	ContributorEmail  *string         `json:"-"`
	ContributorUserID *uuid.UUID      `json:"-"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Aggregates is the item-level contribution state recomputed inside the
// inserting transaction.
type Aggregates struct {
	TotalContributed  decimal.Decimal `json:"total_contributed"`
	ContributorsCount int             `json:"contributors_count"`
}
