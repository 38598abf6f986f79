package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/reservation"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, reservation.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewReservationRepository(mock)
}

func testReservation() *reservation.Reservation {
	return &reservation.Reservation{
		ID:           uuid.New(),
		ItemID:       uuid.New(),
		ReserverName: "Bob",
		CancelSecret: "f1e2d3c4b5a69788f1e2d3c4b5a69788",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestReserveClaimsTheSlot(t *testing.T) {
	mock, repo := newMockRepo(t)
	res := testReservation()

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(res.ID, res.ItemID, res.ReserverName, res.ReserverEmail,
			res.ReserverUserID, res.CancelSecret, res.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(res.ID))

	require.NoError(t, repo.Reserve(context.Background(), res))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveConflictWhenSlotTaken(t *testing.T) {
	mock, repo := newMockRepo(t)
	res := testReservation()

	// An active reservation makes the conditional upsert touch no row.
	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(res.ID, res.ItemID, res.ReserverName, res.ReserverEmail,
			res.ReserverUserID, res.CancelSecret, res.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.Reserve(context.Background(), res)
	assert.ErrorIs(t, err, reservation.ErrAlreadyReserved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelChecksSecret(t *testing.T) {
	itemID := uuid.New()
	resID := uuid.New()

	t.Run("matching secret cancels", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, cancel_secret FROM reservations").
			WithArgs(itemID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "cancel_secret"}).AddRow(resID, "secret"))
		mock.ExpectExec("UPDATE reservations SET is_cancelled = TRUE").
			WithArgs(resID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Cancel(context.Background(), itemID, "secret"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong secret is rejected without writing", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, cancel_secret FROM reservations").
			WithArgs(itemID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "cancel_secret"}).AddRow(resID, "secret"))

		err := repo.Cancel(context.Background(), itemID, "guess")
		assert.ErrorIs(t, err, reservation.ErrWrongCancelSecret)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active reservation", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, cancel_secret FROM reservations").
			WithArgs(itemID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "cancel_secret"}))

		err := repo.Cancel(context.Background(), itemID, "secret")
		assert.ErrorIs(t, err, reservation.ErrNoActiveReservation)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
