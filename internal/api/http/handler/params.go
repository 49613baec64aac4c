package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/model"
)

func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.NewErrValidation("Invalid " + name)
	}
	return id, nil
}

// callerID returns the user set by the authentication middleware.
func callerID(c *fiber.Ctx, contextManager model.ContextManager) (uuid.UUID, error) {
	userID, ok := contextManager.GetUserIDFromContext(c.UserContext())
	if !ok {
		return uuid.Nil, apperr.NewErrMissingAuthorizationToken()
	}
	return userID, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.NewErrInvalidBody()
	}
	return nil
}
