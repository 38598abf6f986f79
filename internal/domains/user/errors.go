package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Service-level (business logic) errors
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
