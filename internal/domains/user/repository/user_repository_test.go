package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/user"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, user.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestCreateUser(t *testing.T) {
	mock, repo := newMockRepo(t)

	u := &user.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.Name, u.AvatarURL, u.PasswordHash, u.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	u := &user.User{ID: uuid.New(), Email: "alice@example.com"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.Name, u.AvatarURL, u.PasswordHash, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	id := uuid.New()
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, email, name, avatar_url, password_hash, created_at").
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "avatar_url", "password_hash", "created_at"}).
			AddRow(id, "alice@example.com", "Alice", (*string)(nil), "$2a$10$hash", created))

	u, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Alice", u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT id, email, name, avatar_url, password_hash, created_at").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "avatar_url", "password_hash", "created_at"}))

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
