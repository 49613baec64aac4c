package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer access tokens and injects the user ID into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid access token.
// Session state is not consulted, so access tokens stay usable until they expire.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := m.authenticateUser(ctx, c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}

	c.SetUserContext(m.contextManager.SetUserIDToContext(ctx, userID))

	return c.Next()
}

func (m *Authenticate) authenticateUser(ctx context.Context, header string) (uuid.UUID, error) {
	tokenString, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return uuid.Nil, apperr.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, apperr.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}
