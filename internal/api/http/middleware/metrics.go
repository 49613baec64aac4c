package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/metrics"
)

// Metrics records request counts and latency per route.
// It must be registered before Logging so the response status is final.
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics creates a new Metrics middleware.
func NewMetrics(metrics *metrics.Metrics) *Metrics {
	return &Metrics{metrics: metrics}
}

// Handle observes the request once the rest of the chain has finished.
func (m *Metrics) Handle(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	// Route paths are registration constants; the method string aliases the request buffer.
	m.metrics.HTTPRequest(strings.Clone(c.Method()), c.Route().Path, c.Response().StatusCode(), time.Since(start))

	return err
}
