package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/postboard-server/internal/apperr"
)

func TestNewErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         apperr.NewErrValidation("Content is required"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Content is required",
		},
		{
			name:        "wrapped auth error",
			err:         fmt.Errorf("refresh: %w", apperr.NewErrInvalidRefreshToken()),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid refresh token",
		},
		{
			name:        "forbidden",
			err:         apperr.NewErrForbidden("delete this post"),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Not allowed to delete this post",
		},
		{
			name:        "conflict",
			err:         apperr.NewErrUsernameOrEmailTaken(),
			wantStatus:  http.StatusConflict,
			wantMessage: "Username or email already exists",
		},
		{
			name:        "internal api error hides cause",
			err:         apperr.NewErrInternalServerError(errors.New("pq: connection refused")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "fiber error",
			err:         fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unexpected error",
			err:         errors.New("failed to get user: timeout"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			status, body := doRequest(t, app, http.MethodGet, "/", "")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, body))
		})
	}
}
