package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishbox-backend/internal/domains/user"
	"wishbox-backend/pkg/database"
)

type userRepo struct {
	db database.Pool
}

// NewUserRepository wires the Postgres implementation of user.Repository.
func NewUserRepository(db database.Pool) user.Repository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, name, avatar_url, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, u.ID, u.Email, u.Name, u.AvatarURL, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, email, name, avatar_url, password_hash, created_at
		FROM users
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, name, avatar_url, password_hash, created_at
		FROM users
		WHERE email = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) scanOne(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
