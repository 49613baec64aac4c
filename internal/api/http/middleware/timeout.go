package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Timeout bounds the request context handed to services and stores.
type Timeout struct {
	timeout time.Duration
}

// NewTimeout creates a new Timeout middleware.
func NewTimeout(timeout time.Duration) *Timeout {
	return &Timeout{timeout: timeout}
}

// Handle replaces the user context with one that expires after the configured timeout.
func (t *Timeout) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), t.timeout)
	defer cancel()

	c.SetUserContext(ctx)

	return c.Next()
}
