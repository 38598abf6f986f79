package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/user"
	"wishbox-backend/pkg/jwt"
)

// fakeRepo is an in-memory user.Repository.
type fakeRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour))
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.NotEqual(t, uuid.Nil, resp.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())

	req := user.RegisterRequest{Email: "alice@example.com", Password: "hunter22", Name: "Alice"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), user.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestGetProfileHidesPasswordHash(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
	})
	require.NoError(t, err)

	out, err := svc.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Email)

	stored := repo.byID[resp.User.ID]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
}
