package repository

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishbox-backend/internal/domains/reservation"
	"wishbox-backend/pkg/database"
)

type reservationRepo struct {
	db database.Pool
}

func NewReservationRepository(db database.Pool) reservation.Repository {
	return &reservationRepo{db: db}
}

// Reserve claims the item with one statement. The UNIQUE constraint on
// item_id funnels concurrent attempts into the same row; the upsert only
// overwrites a cancelled claim, so an active one makes the statement
// return no row, which maps to ErrAlreadyReserved. Postgres serializes
// the conflicting writers for us.
func (r *reservationRepo) Reserve(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, item_id, reserver_name, reserver_email,
		                          reserver_user_id, cancel_secret, is_cancelled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (item_id) DO UPDATE
		SET id               = EXCLUDED.id,
		    reserver_name    = EXCLUDED.reserver_name,
		    reserver_email   = EXCLUDED.reserver_email,
		    reserver_user_id = EXCLUDED.reserver_user_id,
		    cancel_secret    = EXCLUDED.cancel_secret,
		    is_cancelled     = FALSE,
		    created_at       = EXCLUDED.created_at
		WHERE reservations.is_cancelled
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		res.ID, res.ItemID, res.ReserverName, res.ReserverEmail,
		res.ReserverUserID, res.CancelSecret, res.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.ErrAlreadyReserved
		}
		return fmt.Errorf("reserve item: %w", err)
	}
	return nil
}

func (r *reservationRepo) Cancel(ctx context.Context, itemID uuid.UUID, cancelSecret string) error {
	var id uuid.UUID
	var stored string
	err := r.db.QueryRow(ctx,
		`SELECT id, cancel_secret FROM reservations WHERE item_id = $1 AND NOT is_cancelled`,
		itemID).Scan(&id, &stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.ErrNoActiveReservation
		}
		return fmt.Errorf("load reservation: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(cancelSecret)) != 1 {
		return reservation.ErrWrongCancelSecret
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET is_cancelled = TRUE WHERE id = $1 AND NOT is_cancelled`, id)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	// A concurrent cancel (or reserve-after-cancel) got there first.
	if tag.RowsAffected() == 0 {
		return reservation.ErrNoActiveReservation
	}
	return nil
}

func (r *reservationRepo) PruneCancelled(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE is_cancelled AND created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cancelled reservations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
