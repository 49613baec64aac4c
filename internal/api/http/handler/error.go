package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
)

const internalErrorMessage = "Internal server error"

// NewErrorHandler renders every error returned by handlers and middleware as {"message": ...}.
func NewErrorHandler(logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *apperr.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Kind == apperr.KindInternal {
				logger.Error("HTTP handler: internal error", "path", c.Path(), "error", err.Error())
				return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: internalErrorMessage})
			}
			return c.Status(apiErr.Kind.HTTPStatus()).JSON(messageResponse{Message: apiErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(messageResponse{Message: fiberErr.Message})
		}

		logger.Error("HTTP handler: unexpected error", "path", c.Path(), "error", err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: internalErrorMessage})
	}
}
