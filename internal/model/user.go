package model

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user with authentication material.
type User struct {
	ID            uuid.UUID
	Username      string
	Email         string
	PasswordHash  string
	RefreshTokens []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshTokenState reports whether the token is currently whitelisted for the user.
func (u User) RefreshTokenState(token string) RefreshTokenState {
	if token != "" && slices.Contains(u.RefreshTokens, token) {
		return RefreshTokenIssued
	}
	return RefreshTokenConsumed
}

// UpdateUserParams holds optional profile changes. Empty fields are left untouched.
type UpdateUserParams struct {
	Username string
	Email    string
}

// RegisterParams contains user-supplied registration data.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// LoginParams contains user-supplied login credentials.
type LoginParams struct {
	Email    string
	Password string
}
