package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// CommentService defines comment operations.
type CommentService interface {
	Create(ctx context.Context, params model.CreateCommentParams) (model.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error)
	Update(ctx context.Context, params model.UpdateCommentParams) (model.Comment, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// Comment handles HTTP endpoints for comments.
type Comment struct {
	commentService CommentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewComment creates a new Comment handler.
func NewComment(commentService CommentService, contextManager model.ContextManager, logger *logger.Logger) *Comment {
	return &Comment{commentService: commentService, contextManager: contextManager, logger: logger}
}

func (h *Comment) Create(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.UserContext(), model.CreateCommentParams{
		UserID:  userID,
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCommentResponse(comment))
}

// ListByPost returns the comments of the post given by the postId query parameter.
func (h *Comment) ListByPost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Query("postId"))
	if err != nil {
		return apperr.NewErrValidation("A valid postId query parameter is required")
	}

	comments, err := h.commentService.ListByPost(c.UserContext(), postID)
	if err != nil {
		return err
	}

	return c.JSON(mapSlice(comments, newCommentResponse))
}

func (h *Comment) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(mapSlice(comments, newCommentResponse))
}

func (h *Comment) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newCommentResponse(comment))
}

func (h *Comment) Update(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.Update(c.UserContext(), model.UpdateCommentParams{
		UserID:    userID,
		CommentID: id,
		Content:   req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(newCommentResponse(comment))
}

func (h *Comment) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.UserContext(), userID, id); err != nil {
		return err
	}

	return c.JSON(messageResponse{Message: "Comment deleted successfully"})
}
