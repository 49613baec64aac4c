package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	tests := []struct {
		name       string
		handler    fiber.Handler
		wantStatus int
		wantLog    []string
	}{
		{
			name:       "success",
			handler:    func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) },
			wantStatus: http.StatusCreated,
			wantLog:    []string{`"msg":"HTTP request completed"`, `"status":201`, `"path":"/ping"`, `"method":"GET"`},
		},
		{
			name:       "client error resolved by error handler",
			handler:    func(c *fiber.Ctx) error { return apperr.NewErrPostNotFound("42") },
			wantStatus: http.StatusNotFound,
			wantLog:    []string{`"msg":"HTTP request rejected"`, `"status":404`},
		},
		{
			name:       "unexpected error",
			handler:    func(c *fiber.Ctx) error { return errors.New("connection reset") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{`"msg":"HTTP request failed"`, `"status":500`, `connection reset`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithFormat(&buf, 0, "json")

			app := newTestApp()
			app.Use(NewLogging(lg).Handle)
			app.Get("/ping", tt.handler)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLogging_Handle_UnknownRoute(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithFormat(&buf, 0, "json")

	app := fiber.New()
	app.Use(NewLogging(lg).Handle)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":404`)
}
