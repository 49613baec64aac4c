package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// TokenService issues token pairs and resolves tokens back to user IDs.
// It never touches the session store.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue creates a fresh access/refresh pair for the user.
func (s *TokenService) Issue(userID uuid.UUID) (model.TokenPair, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshUserID verifies a refresh token and returns its subject.
func (s *TokenService) RefreshUserID(token string) (uuid.UUID, error) {
	return s.manager.ParseRefreshToken(token)
}

// GetUserID verifies an access token and returns its subject.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: access token rejected", "error", err.Error())
		return uuid.Nil, err
	}
	return userID, nil
}
