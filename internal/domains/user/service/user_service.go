package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wishbox-backend/internal/domains/user"
	"wishbox-backend/pkg/jwt"
	"wishbox-backend/pkg/logger"
)

// userService implements user.Service.
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the account service. Dependencies come in via
// the constructor so tests can swap the repository for a fake.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index on email is the source of truth. A pre-check
	// would race with concurrent registrations anyway.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("[USER] Account registered", map[string]interface{}{
		"user_id": u.ID.String(),
	})

	return s.issueToken(u)
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			// Same error as a wrong password, so the response does not
			// reveal which emails are registered.
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserOut, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := user.ToUserOut(u)
	return &out, nil
}

func (s *userService) issueToken(u *user.User) (*user.TokenResponse, error) {
	token, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.ToUserOut(u),
	}, nil
}
