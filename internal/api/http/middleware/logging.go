package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/logger"
)

// Logging logs every request after the error handler has written the response.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
// Errors returned by the chain are resolved here through the app error handler,
// so outer middleware observe the final status code.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	chainErr := c.Next()
	if chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	args := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		l.logger.Error("HTTP request failed", append(args, "error", chainErr)...)
	case chainErr != nil:
		l.logger.Info("HTTP request rejected", append(args, "error", chainErr.Error())...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}

	return nil
}
