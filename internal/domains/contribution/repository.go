package contribution

import "context"

// Repository defines the data access contract for the contribution
// ledger.
type Repository interface {
	// Add appends one entry and returns the item's aggregates including
	// it. Insert and aggregate read run in one transaction, so two
	// concurrent contributions can never observe or produce a lost
	// update: each returned total includes every committed entry.
	Add(ctx context.Context, c *Contribution) (*Aggregates, error)
}
