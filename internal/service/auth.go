package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/metrics"
	"github.com/dtroode/postboard-server/internal/model"
)

// Auth implements registration, login and the refresh token lifecycle.
//
// A refresh token is ISSUED while it is in its owner's whitelist and CONSUMED
// once rotated or logged out. Presenting a token that is not ISSUED is treated
// as theft: every session of the owner is revoked.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	metrics      *metrics.Metrics
	logger       *logger.Logger
	maxSessions  int
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	maxSessions int,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		metrics:      metrics,
		logger:       logger,
		maxSessions:  maxSessions,
		now:          time.Now,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (pair model.TokenPair, err error) {
	defer func() { a.observe(metrics.OpRegister, err) }()

	params.Username = strings.TrimSpace(params.Username)
	params.Email = strings.TrimSpace(params.Email)
	if params.Username == "" || params.Email == "" || params.Password == "" {
		return model.TokenPair{}, apperr.NewErrValidation("Username, email and password are required")
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.TokenPair{}, apperr.NewErrEmailIsTaken(params.Email)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, model.ErrPasswordTooLong) {
			return model.TokenPair{}, apperr.NewErrValidation("Password is too long")
		}
		return model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.New()
	pair, err = a.tokenService.Issue(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	now := a.now()
	_, err = a.userStore.Create(ctx, model.User{
		ID:            userID,
		Username:      params.Username,
		Email:         params.Email,
		PasswordHash:  hash,
		RefreshTokens: []string{pair.RefreshToken},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if errors.Is(err, model.ErrConflict) {
		a.logger.Info("Auth service: username or email taken on insert",
			"email", params.Email,
			"username", params.Username)
		return model.TokenPair{}, apperr.NewErrUsernameOrEmailTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", userID)

	return pair, nil
}

func (a *Auth) Login(ctx context.Context, params model.LoginParams) (pair model.TokenPair, err error) {
	defer func() { a.observe(metrics.OpLogin, err) }()

	params.Email = strings.TrimSpace(params.Email)
	if params.Email == "" || params.Password == "" {
		return model.TokenPair{}, apperr.NewErrValidation("Email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", params.Email)
		return model.TokenPair{}, apperr.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, params.Password); err != nil {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.TokenPair{}, apperr.NewErrInvalidCredentials()
	}

	pair, err = a.tokenService.Issue(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	err = a.sessionStore.AppendRefreshToken(ctx, user.ID, pair.RefreshToken, a.maxSessions)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, apperr.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return pair, nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (pair model.TokenPair, err error) {
	defer func() { a.observe(metrics.OpRefresh, err) }()

	user, err := a.redeemable(ctx, refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	pair, err = a.tokenService.Issue(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	err = a.sessionStore.RotateRefreshToken(ctx, user.ID, refreshToken, pair.RefreshToken)
	if errors.Is(err, model.ErrRefreshTokenNotPresent) {
		// Lost the race against a concurrent redemption of the same token.
		return model.TokenPair{}, a.revokeAll(ctx, user.ID)
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	a.logger.Debug("Auth service: refresh token rotated",
		"user_id", user.ID)

	return pair, nil
}

func (a *Auth) Logout(ctx context.Context, refreshToken string) (err error) {
	defer func() { a.observe(metrics.OpLogout, err) }()

	user, err := a.redeemable(ctx, refreshToken)
	if err != nil {
		return err
	}

	err = a.sessionStore.RemoveRefreshToken(ctx, user.ID, refreshToken)
	if errors.Is(err, model.ErrRefreshTokenNotPresent) {
		return a.revokeAll(ctx, user.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to remove refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", user.ID)

	return nil
}

// redeemable verifies the token and returns its owner if the token is still ISSUED.
func (a *Auth) redeemable(ctx context.Context, refreshToken string) (model.User, error) {
	if refreshToken == "" {
		return model.User{}, apperr.NewErrValidation("Refresh token is required")
	}

	userID, err := a.tokenService.RefreshUserID(refreshToken)
	if err != nil {
		a.logger.Debug("Auth service: refresh token rejected",
			"error", err.Error())
		return model.User{}, apperr.NewErrInvalidRefreshToken()
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewErrInvalidRefreshToken()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.RefreshTokenState(refreshToken) != model.RefreshTokenIssued {
		return model.User{}, a.revokeAll(ctx, user.ID)
	}

	return user, nil
}

// revokeAll empties the whitelist after a consumed token was presented.
func (a *Auth) revokeAll(ctx context.Context, userID uuid.UUID) error {
	a.logger.Warn("Auth service: possible token theft, revoking all sessions",
		"user_id", userID)
	a.metrics.RefreshTokenReused()

	if err := a.sessionStore.ClearRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh tokens: %w", err)
	}

	return apperr.NewErrInvalidRefreshToken()
}

func (a *Auth) observe(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = apperr.KindOf(err).String()
	}
	a.metrics.AuthOperation(op, outcome)
}
