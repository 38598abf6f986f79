package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/pkg/cache"
	"wishbox-backend/pkg/database"
	"wishbox-backend/pkg/logger"
)

const (
	slugCacheKeyFmt = "wishlist:slug:%s"
	slugCacheTTL    = 5 * time.Minute
)

// wishlistRepo is the Postgres implementation with a Redis cache-aside on
// the slug lookup. Only the wishlist row itself is cached; items and
// their aggregates are always read fresh so guest activity is never
// served stale.
type wishlistRepo struct {
	db    database.Pool
	cache cache.Cache
}

func NewWishlistRepository(db database.Pool, c cache.Cache) wishlist.Repository {
	return &wishlistRepo{db: db, cache: c}
}

func (r *wishlistRepo) Create(ctx context.Context, w *wishlist.Wishlist) error {
	query := `
		INSERT INTO wishlists (id, user_id, title, description, cover_emoji, slug, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		w.ID, w.UserID, w.Title, w.Description, w.CoverEmoji, w.Slug, w.IsPublic, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return wishlist.ErrSlugTaken
		}
		return fmt.Errorf("insert wishlist: %w", err)
	}
	return nil
}

func (r *wishlistRepo) FindBySlug(ctx context.Context, slug string) (*wishlist.Wishlist, error) {
	cacheKey := fmt.Sprintf(slugCacheKeyFmt, slug)

	var cached wishlist.Wishlist
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, user_id, title, description, cover_emoji, slug, is_public, created_at, updated_at
		FROM wishlists
		WHERE slug = $1`

	w, err := r.scanOne(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, w, slugCacheTTL); err != nil {
		logger.Warn("[WISHLIST] Failed to cache wishlist", map[string]interface{}{
			"slug": slug, "error": err.Error(),
		})
	}
	return w, nil
}

func (r *wishlistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]wishlist.Summary, error) {
	query := `
		SELECT w.id, w.title, w.cover_emoji, w.slug, w.is_public, w.created_at, w.updated_at,
		       COUNT(i.id) FILTER (WHERE NOT i.is_deleted) AS item_count
		FROM wishlists w
		LEFT JOIN items i ON i.wishlist_id = w.id
		WHERE w.user_id = $1
		GROUP BY w.id
		ORDER BY w.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	defer rows.Close()

	summaries := make([]wishlist.Summary, 0)
	for rows.Next() {
		var s wishlist.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.CoverEmoji, &s.Slug, &s.IsPublic,
			&s.CreatedAt, &s.UpdatedAt, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan wishlist summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *wishlistRepo) Update(ctx context.Context, w *wishlist.Wishlist) error {
	query := `
		UPDATE wishlists
		SET title = $2, description = $3, cover_emoji = $4, is_public = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, w.ID, w.Title, w.Description, w.CoverEmoji, w.IsPublic, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update wishlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return wishlist.ErrWishlistNotFound
	}

	r.invalidate(ctx, w.Slug)
	return nil
}

func (r *wishlistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// RETURNING the slug lets the cache entry die with the row.
	query := `DELETE FROM wishlists WHERE id = $1 RETURNING slug`

	var slug string
	if err := r.db.QueryRow(ctx, query, id).Scan(&slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wishlist.ErrWishlistNotFound
		}
		return fmt.Errorf("delete wishlist: %w", err)
	}

	r.invalidate(ctx, slug)
	return nil
}

func (r *wishlistRepo) OwnerName(ctx context.Context, ownerID uuid.UUID) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, ownerID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("owner name: %w", err)
	}
	return name, nil
}

func (r *wishlistRepo) invalidate(ctx context.Context, slug string) {
	if err := r.cache.Delete(ctx, fmt.Sprintf(slugCacheKeyFmt, slug)); err != nil {
		logger.Warn("[WISHLIST] Failed to invalidate cache", map[string]interface{}{
			"slug": slug, "error": err.Error(),
		})
	}
}

func (r *wishlistRepo) scanOne(row pgx.Row) (*wishlist.Wishlist, error) {
	var w wishlist.Wishlist
	err := row.Scan(&w.ID, &w.UserID, &w.Title, &w.Description, &w.CoverEmoji,
		&w.Slug, &w.IsPublic, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wishlist.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("scan wishlist: %w", err)
	}
	return &w, nil
}
