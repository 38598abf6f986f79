package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/pkg/database"
)

// recordColumns is the item row plus its computed reservation and
// contribution state. The subqueries stay cheap: reservations has at
// most one row per item and contributions is indexed on item_id.
const recordColumns = `
	i.id, i.wishlist_id, i.name, i.url, i.price, i.image_url, i.description,
	i.priority, i.is_group_gift, i.target_amount, i.created_at,
	EXISTS (
		SELECT 1 FROM reservations r
		WHERE r.item_id = i.id AND NOT r.is_cancelled
	) AS is_reserved,
	(
		SELECT r.reserver_name FROM reservations r
		WHERE r.item_id = i.id AND NOT r.is_cancelled
	) AS reserved_by,
	COALESCE((
		SELECT SUM(c.amount) FROM contributions c WHERE c.item_id = i.id
	), 0) AS total_contributed,
	(
		SELECT COUNT(*) FROM contributions c WHERE c.item_id = i.id
	) AS contributors_count`

type itemRepo struct {
	db database.Pool
}

func NewItemRepository(db database.Pool) item.Repository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *item.Item) error {
	query := `
		INSERT INTO items (id, wishlist_id, name, url, price, image_url, description,
		                   priority, is_group_gift, target_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		it.ID, it.WishlistID, it.Name, it.URL, it.Price, it.ImageURL, it.Description,
		it.Priority, it.IsGroupGift, it.TargetAmount, it.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *itemRepo) FindActive(ctx context.Context, wishlistID, itemID uuid.UUID) (*item.Item, error) {
	query := `
		SELECT id, wishlist_id, name, url, price, image_url, description,
		       priority, is_group_gift, target_amount, created_at
		FROM items
		WHERE id = $1 AND wishlist_id = $2 AND NOT is_deleted`

	var it item.Item
	err := r.db.QueryRow(ctx, query, itemID, wishlistID).Scan(
		&it.ID, &it.WishlistID, &it.Name, &it.URL, &it.Price, &it.ImageURL, &it.Description,
		&it.Priority, &it.IsGroupGift, &it.TargetAmount, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &it, nil
}

func (r *itemRepo) Update(ctx context.Context, it *item.Item) error {
	query := `
		UPDATE items
		SET name = $2, url = $3, price = $4, image_url = $5, description = $6,
		    priority = $7, is_group_gift = $8, target_amount = $9
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, query,
		it.ID, it.Name, it.URL, it.Price, it.ImageURL, it.Description,
		it.Priority, it.IsGroupGift, it.TargetAmount)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) SoftDelete(ctx context.Context, wishlistID, itemID uuid.UUID) error {
	query := `
		UPDATE items
		SET is_deleted = TRUE, deleted_at = now()
		WHERE id = $1 AND wishlist_id = $2 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, query, itemID, wishlistID)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) PurgeDeleted(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		DELETE FROM items i
		WHERE i.is_deleted
		  AND i.deleted_at < $1
		  AND NOT EXISTS (SELECT 1 FROM contributions c WHERE c.item_id = i.id)`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge deleted items: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *itemRepo) GetRecord(ctx context.Context, wishlistID, itemID uuid.UUID) (*item.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM items i
		WHERE i.id = $1 AND i.wishlist_id = $2 AND NOT i.is_deleted`

	rec, err := r.scanRecord(r.db.QueryRow(ctx, query, itemID, wishlistID))
	if err != nil {
		return nil, err
	}

	records := []item.Record{*rec}
	if err := r.attachContributors(ctx, records); err != nil {
		return nil, err
	}
	return &records[0], nil
}

func (r *itemRepo) ListRecords(ctx context.Context, wishlistID uuid.UUID) ([]item.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM items i
		WHERE i.wishlist_id = $1 AND NOT i.is_deleted
		ORDER BY i.priority DESC, i.created_at ASC`

	rows, err := r.db.Query(ctx, query, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	records := make([]item.Record, 0)
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachContributors(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// attachContributors fills in contributor names for the given records in
// one query. Records are matched by item id in place.
func (r *itemRepo) attachContributors(ctx context.Context, records []item.Record) error {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*item.Record, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for i := range records {
		byID[records[i].ID] = &records[i]
		ids = append(ids, records[i].ID)
	}

	query := `
		SELECT item_id, contributor_name, created_at
		FROM contributions
		WHERE item_id = ANY($1)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list contributors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID uuid.UUID
		var contrib item.Contributor
		if err := rows.Scan(&itemID, &contrib.Name, &contrib.CreatedAt); err != nil {
			return fmt.Errorf("scan contributor: %w", err)
		}
		if rec, ok := byID[itemID]; ok {
			rec.Contributors = append(rec.Contributors, contrib)
		}
	}
	return rows.Err()
}

func (r *itemRepo) scanRecord(row pgx.Row) (*item.Record, error) {
	var rec item.Record
	err := row.Scan(
		&rec.ID, &rec.WishlistID, &rec.Name, &rec.URL, &rec.Price, &rec.ImageURL, &rec.Description,
		&rec.Priority, &rec.IsGroupGift, &rec.TargetAmount, &rec.CreatedAt,
		&rec.IsReserved, &rec.ReservedBy, &rec.TotalContributed, &rec.ContributorsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item record: %w", err)
	}
	return &rec, nil
}
