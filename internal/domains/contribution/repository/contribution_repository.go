package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wishbox-backend/internal/domains/contribution"
	"wishbox-backend/pkg/database"
)

type contributionRepo struct {
	db database.Pool
}

func NewContributionRepository(db database.Pool) contribution.Repository {
	return &contributionRepo{db: db}
}

// Add inserts the entry and reads the aggregates back in the same
// transaction. The ledger has no stored counter to race on: totals are
// always SUM/COUNT over committed rows.
func (r *contributionRepo) Add(ctx context.Context, c *contribution.Contribution) (*contribution.Aggregates, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*contribution.Aggregates, error) {
		insert := `
			INSERT INTO contributions (id, item_id, contributor_name, contributor_email,
			                           contributor_user_id, amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := tx.Exec(ctx, insert,
			c.ID, c.ItemID, c.ContributorName, c.ContributorEmail,
			c.ContributorUserID, c.Amount, c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert contribution: %w", err)
		}

		var agg contribution.Aggregates
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM contributions WHERE item_id = $1`,
			c.ItemID).Scan(&agg.TotalContributed, &agg.ContributorsCount)
		if err != nil {
			return nil, fmt.Errorf("aggregate contributions: %w", err)
		}
		return &agg, nil
	})
}
