package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/testutil"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(testutil.MakeNoopLogger())})
}

// asCaller stands in for the authentication middleware.
func asCaller(cm model.ContextManager, userID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(cm.SetUserIDToContext(c.UserContext(), userID))
		return c.Next()
	}
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()

	var resp messageResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	return resp.Message
}
