package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// AuthService defines registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.TokenPair, error)
	Login(ctx context.Context, params model.LoginParams) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// Register creates an account and returns its first token pair.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username,
		"email", req.Email)

	pair, err := h.authService.Register(c.UserContext(), model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newTokenResponse(pair))
}

// Login verifies credentials and opens a new session.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	pair, err := h.authService.Login(c.UserContext(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(newTokenResponse(pair))
}

// RefreshToken exchanges a refresh token for a new pair.
func (h *Auth) RefreshToken(c *fiber.Ctx) error {
	var req refreshTokenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(newTokenResponse(pair))
}

// Logout ends the session the refresh token belongs to.
func (h *Auth) Logout(c *fiber.Ctx) error {
	var req refreshTokenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.authService.Logout(c.UserContext(), req.RefreshToken); err != nil {
		return err
	}

	return c.JSON(messageResponse{Message: "Logged out successfully"})
}
