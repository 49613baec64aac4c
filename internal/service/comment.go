package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Comment manages comments on posts.
type Comment struct {
	commentStore model.CommentStore
	postStore    model.PostStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewComment(commentStore model.CommentStore, postStore model.PostStore, logger *logger.Logger) *Comment {
	return &Comment{
		commentStore: commentStore,
		postStore:    postStore,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Comment) Create(ctx context.Context, params model.CreateCommentParams) (model.Comment, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return model.Comment{}, apperr.NewErrValidation("Content is required")
	}
	if params.PostID == uuid.Nil {
		return model.Comment{}, apperr.NewErrValidation("Post ID is required")
	}

	_, err := s.postStore.GetByID(ctx, params.PostID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Comment{}, apperr.NewErrPostNotFound(params.PostID.String())
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	now := s.now()
	comment, err := s.commentStore.Create(ctx, model.Comment{
		ID:        uuid.New(),
		PostID:    params.PostID,
		UserID:    params.UserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Comment{}, apperr.NewErrPostNotFound(params.PostID.String())
	}
	if err != nil {
		s.logger.Error("Comment service: failed to create comment",
			"post_id", params.PostID,
			"error", err.Error())
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("Comment service: comment created",
		"comment_id", comment.ID,
		"post_id", comment.PostID)

	return comment, nil
}

func (s *Comment) Get(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	comment, err := s.commentStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Comment{}, apperr.NewErrCommentNotFound(id.String())
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to get comment by id: %w", err)
	}
	return comment, nil
}

func (s *Comment) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by post: %w", err)
	}
	return comments, nil
}

func (s *Comment) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by user: %w", err)
	}
	return comments, nil
}

func (s *Comment) Update(ctx context.Context, params model.UpdateCommentParams) (model.Comment, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return model.Comment{}, apperr.NewErrValidation("Content is required")
	}

	if err := s.checkAuthor(ctx, params.UserID, params.CommentID, "update this comment"); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.commentStore.UpdateContent(ctx, params.CommentID, content)
	if errors.Is(err, model.ErrNotFound) {
		return model.Comment{}, apperr.NewErrCommentNotFound(params.CommentID.String())
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (s *Comment) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if err := s.checkAuthor(ctx, callerID, id, "delete this comment"); err != nil {
		return err
	}

	err := s.commentStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewErrCommentNotFound(id.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("Comment service: comment deleted",
		"comment_id", id)

	return nil
}

func (s *Comment) checkAuthor(ctx context.Context, callerID, id uuid.UUID, action string) error {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		return apperr.NewErrForbidden(action)
	}
	return nil
}
