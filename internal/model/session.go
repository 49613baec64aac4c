package model

import (
	"context"

	"github.com/google/uuid"
)

// RefreshTokenState is the lifecycle state of a refresh token from its owner's point of view.
type RefreshTokenState int

const (
	// RefreshTokenConsumed covers tokens that were rotated, logged out, or never issued to the user.
	RefreshTokenConsumed RefreshTokenState = iota
	// RefreshTokenIssued means the token is present in the user's whitelist.
	RefreshTokenIssued
)

func (s RefreshTokenState) String() string {
	switch s {
	case RefreshTokenIssued:
		return "issued"
	default:
		return "consumed"
	}
}

// SessionStore mutates the refresh token whitelist stored on the user record.
// Every method is a single atomic write.
type SessionStore interface {
	// AppendRefreshToken adds token to the whitelist. When limit > 0 the oldest
	// entries are dropped so that at most limit tokens remain.
	AppendRefreshToken(ctx context.Context, userID uuid.UUID, token string, limit int) error
	// RotateRefreshToken replaces presented with next only if presented is still
	// whitelisted, otherwise it returns ErrRefreshTokenNotPresent.
	RotateRefreshToken(ctx context.Context, userID uuid.UUID, presented, next string) error
	// RemoveRefreshToken removes token only if it is whitelisted, otherwise it
	// returns ErrRefreshTokenNotPresent.
	RemoveRefreshToken(ctx context.Context, userID uuid.UUID, token string) error
	// ClearRefreshTokens empties the whitelist.
	ClearRefreshTokens(ctx context.Context, userID uuid.UUID) error
}
