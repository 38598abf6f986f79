package contribution

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for contributions.
// viewerID is nil for anonymous callers; contributing never requires an
// account.
type Service interface {
	// Contribute appends a pledge to a group gift and returns the entry
	// with the updated aggregates. Totals past the target are accepted,
	// surfaced as goal_reached rather than rejected.
	Contribute(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req ContributeRequest) (*ContributionOut, error)
}
