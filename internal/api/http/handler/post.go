package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// PostService defines post operations.
type PostService interface {
	Create(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
	Update(ctx context.Context, params model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// Post handles HTTP endpoints for posts.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{postService: postService, contextManager: contextManager, logger: logger}
}

// Create publishes a post authored by the caller.
func (h *Post) Create(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req postRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.UserContext(), model.CreatePostParams{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newPostResponse(post))
}

func (h *Post) List(c *fiber.Ctx) error {
	posts, err := h.postService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(mapSlice(posts, newPostResponse))
}

func (h *Post) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newPostResponse(post))
}

func (h *Post) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userID")
	if err != nil {
		return err
	}

	posts, err := h.postService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(mapSlice(posts, newPostResponse))
}

// Update replaces the content of a post authored by the caller.
func (h *Post) Update(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req postRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.postService.Update(c.UserContext(), model.UpdatePostParams{
		UserID:  userID,
		PostID:  id,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(newPostResponse(post))
}

func (h *Post) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.UserContext(), userID, id); err != nil {
		return err
	}

	return c.JSON(messageResponse{Message: "Post deleted successfully"})
}
