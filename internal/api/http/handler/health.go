package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/logger"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	database Pinger
	logger   *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(database Pinger, logger *logger.Logger) *Health {
	return &Health{database: database, logger: logger}
}

// Check answers 200 when the database responds to a ping and 503 otherwise.
func (h *Health) Check(c *fiber.Ctx) error {
	if err := h.database.Ping(c.UserContext()); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
