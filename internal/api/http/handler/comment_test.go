package handler

import (
	"encoding/json"
	"net/http"
	"testing"

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

func newCommentApp(svc CommentService, caller uuid.UUID) *fiber.App {
	cm := httpContext.NewManager()
	h := NewComment(svc, cm, testutil.MakeNoopLogger())

	app := newTestApp()
	app.Get("/comments", h.ListByPost)
	app.Get("/comments/user/:userId", h.ListByUser)
	app.Get("/comments/:id", h.Get)

	protected := app.Group("/comments", asCaller(cm, caller))
	protected.Post("/", h.Create)
	protected.Put("/:id", h.Update)
	protected.Delete("/:id", h.Delete)

	return app
}

func TestComment_Create(t *testing.T) {
	caller := uuid.New()
	postID := uuid.New()
	params := model.CreateCommentParams{UserID: caller, PostID: postID, Content: "nice"}
	body := `{"postId":"` + postID.String() + `","content":"nice"}`

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewCommentService(t)
		svc.On("Create", mock.Anything, params).
			Return(model.Comment{ID: uuid.New(), PostID: postID, UserID: caller, Content: "nice"}, nil)

		status, respBody := doRequest(t, newCommentApp(svc, caller), http.MethodPost, "/comments", body)

		assert.Equal(t, http.StatusCreated, status)

		var got commentResponse
		require.NoError(t, json.Unmarshal(respBody, &got))
		assert.Equal(t, postID, got.PostID)
		assert.Equal(t, caller, got.UserID)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc := mocks.NewCommentService(t)
		svc.On("Create", mock.Anything, params).Return(model.Comment{}, apperr.NewErrPostNotFound(postID.String()))

		status, respBody := doRequest(t, newCommentApp(svc, caller), http.MethodPost, "/comments", body)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Post not found", decodeMessage(t, respBody))
	})

	t.Run("malformed post id", func(t *testing.T) {
		svc := mocks.NewCommentService(t)

		status, _ := doRequest(t, newCommentApp(svc, caller), http.MethodPost, "/comments", `{"postId":"abc","content":"nice"}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestComment_ListByPost(t *testing.T) {
	postID := uuid.New()

	t.Run("by post", func(t *testing.T) {
		svc := mocks.NewCommentService(t)
		svc.On("ListByPost", mock.Anything, postID).Return([]model.Comment{{ID: uuid.New(), PostID: postID}}, nil)

		status, body := doRequest(t, newCommentApp(svc, uuid.New()), http.MethodGet, "/comments?postId="+postID.String(), "")

		assert.Equal(t, http.StatusOK, status)

		var got []commentResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Len(t, got, 1)
	})

	t.Run("missing query", func(t *testing.T) {
		svc := mocks.NewCommentService(t)

		status, body := doRequest(t, newCommentApp(svc, uuid.New()), http.MethodGet, "/comments", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "A valid postId query parameter is required", decodeMessage(t, body))
	})
}

func TestComment_ListByUser(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewCommentService(t)
	svc.On("ListByUser", mock.Anything, userID).Return(nil, nil)

	status, body := doRequest(t, newCommentApp(svc, uuid.New()), http.MethodGet, "/comments/user/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestComment_Get(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewCommentService(t)
	svc.On("Get", mock.Anything, id).Return(model.Comment{}, apperr.NewErrCommentNotFound(id.String()))

	status, body := doRequest(t, newCommentApp(svc, uuid.New()), http.MethodGet, "/comments/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Comment not found", decodeMessage(t, body))
}

func TestComment_Update(t *testing.T) {
	caller := uuid.New()
	id := uuid.New()

	svc := mocks.NewCommentService(t)
	svc.On("Update", mock.Anything, model.UpdateCommentParams{UserID: caller, CommentID: id, Content: "edit"}).
		Return(model.Comment{}, apperr.NewErrForbidden("update this comment"))

	status, _ := doRequest(t, newCommentApp(svc, caller), http.MethodPut, "/comments/"+id.String(), `{"content":"edit"}`)

	assert.Equal(t, http.StatusForbidden, status)
}

func TestComment_Delete(t *testing.T) {
	caller := uuid.New()
	id := uuid.New()

	svc := mocks.NewCommentService(t)
	svc.On("Delete", mock.Anything, caller, id).Return(nil)

	status, body := doRequest(t, newCommentApp(svc, caller), http.MethodDelete, "/comments/"+id.String(), "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Comment deleted successfully", decodeMessage(t, body))
}
