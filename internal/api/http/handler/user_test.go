package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpContext "github.com/dtroode/postboard-server/internal/api/http/context"
	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/mocks"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/testutil"
)

func newUserApp(svc UserService, caller uuid.UUID) *fiber.App {
	cm := httpContext.NewManager()
	h := NewUser(svc, cm, testutil.MakeNoopLogger())

	app := newTestApp()
	app.Get("/users", h.List)
	app.Get("/users/:id", h.Get)

	protected := app.Group("/users")
	if caller != uuid.Nil {
		protected.Use(asCaller(cm, caller))
	}
	protected.Put("/:id", h.Update)
	protected.Delete("/:id", h.Delete)

	return app
}

func TestUser_List_HidesSecrets(t *testing.T) {
	user := model.User{
		ID:            uuid.New(),
		Username:      "alice",
		Email:         "alice@example.com",
		PasswordHash:  "$2a$10$hash",
		RefreshTokens: []string{"refresh"},
		CreatedAt:     time.Now().UTC(),
	}

	svc := mocks.NewUserService(t)
	svc.On("List", mock.Anything).Return([]model.User{user}, nil)

	status, body := doRequest(t, newUserApp(svc, uuid.Nil), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, status)
	assert.NotContains(t, string(body), "$2a$10$hash")
	assert.NotContains(t, string(body), "refresh")

	var got []userResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, user.ID, got[0].ID)
	assert.Equal(t, "alice", got[0].Username)
}

func TestUser_List_Empty(t *testing.T) {
	svc := mocks.NewUserService(t)
	svc.On("List", mock.Anything).Return(nil, nil)

	status, body := doRequest(t, newUserApp(svc, uuid.Nil), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestUser_Get(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		path       string
		setup      func(svc *mocks.UserService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/users/" + id.String(),
			setup: func(svc *mocks.UserService) {
				svc.On("Get", mock.Anything, id).Return(model.User{ID: id, Username: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/users/" + id.String(),
			setup: func(svc *mocks.UserService) {
				svc.On("Get", mock.Anything, id).Return(model.User{}, apperr.NewErrUserNotFound(id.String()))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			path:       "/users/not-a-uuid",
			setup:      func(svc *mocks.UserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewUserService(t)
			tt.setup(svc)

			status, _ := doRequest(t, newUserApp(svc, uuid.Nil), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestUser_Update(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	t.Run("own profile", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Update", mock.Anything, caller, caller, model.UpdateUserParams{Username: "bob"}).
			Return(model.User{ID: caller, Username: "bob"}, nil)

		status, body := doRequest(t, newUserApp(svc, caller), http.MethodPut, "/users/"+caller.String(), `{"username":"bob"}`)

		assert.Equal(t, http.StatusOK, status)

		var got userResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "bob", got.Username)
	})

	t.Run("another user", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Update", mock.Anything, caller, other, model.UpdateUserParams{Email: "x@example.com"}).
			Return(model.User{}, apperr.NewErrForbidden("update another user"))

		status, body := doRequest(t, newUserApp(svc, caller), http.MethodPut, "/users/"+other.String(), `{"email":"x@example.com"}`)

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Not allowed to update another user", decodeMessage(t, body))
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Update", mock.Anything, caller, caller, model.UpdateUserParams{Username: "taken"}).
			Return(model.User{}, apperr.NewErrUsernameOrEmailTaken())

		status, _ := doRequest(t, newUserApp(svc, caller), http.MethodPut, "/users/"+caller.String(), `{"username":"taken"}`)

		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("no caller in context", func(t *testing.T) {
		svc := mocks.NewUserService(t)

		status, _ := doRequest(t, newUserApp(svc, uuid.Nil), http.MethodPut, "/users/"+caller.String(), `{"username":"bob"}`)

		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestUser_Delete(t *testing.T) {
	caller := uuid.New()

	svc := mocks.NewUserService(t)
	svc.On("Delete", mock.Anything, caller, caller).Return(nil)

	status, body := doRequest(t, newUserApp(svc, caller), http.MethodDelete, "/users/"+caller.String(), "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User deleted successfully", decodeMessage(t, body))
}
