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

// Post manages posts. The author is always the authenticated caller.
type Post struct {
	postStore model.PostStore
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

// NewPost creates the post service. storage may be nil when attachments are disabled.
func NewPost(postStore model.PostStore, storage model.Storage, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Post) Create(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return model.Post{}, apperr.NewErrValidation("Content is required")
	}

	now := s.now()
	post, err := s.postStore.Create(ctx, model.Post{
		ID:        uuid.New(),
		UserID:    params.UserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"user_id", post.UserID)

	return post, nil
}

func (s *Post) Get(ctx context.Context, id uuid.UUID) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apperr.NewErrPostNotFound(id.String())
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}
	return post, nil
}

func (s *Post) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListByUser returns the user's posts and a not found error when there are none.
func (s *Post) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	posts, err := s.postStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}
	if len(posts) == 0 {
		return nil, apperr.NewErrNoPostsForUser(userID.String())
	}
	return posts, nil
}

func (s *Post) Update(ctx context.Context, params model.UpdatePostParams) (model.Post, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return model.Post{}, apperr.NewErrValidation("Content is required")
	}

	if _, err := s.owned(ctx, params.UserID, params.PostID, "update this post"); err != nil {
		return model.Post{}, err
	}

	post, err := s.postStore.UpdateContent(ctx, params.PostID, content)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apperr.NewErrPostNotFound(params.PostID.String())
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s *Post) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	post, err := s.owned(ctx, callerID, id, "delete this post")
	if err != nil {
		return err
	}

	err = s.postStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewErrPostNotFound(id.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if post.HasAttachment() && s.storage != nil {
		if err := s.storage.Delete(ctx, post.AttachmentKey); err != nil {
			s.logger.Warn("Post service: failed to delete attachment object",
				"post_id", id,
				"key", post.AttachmentKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Post service: post deleted",
		"post_id", id)

	return nil
}

// owned loads the post and checks that callerID is its author.
func (s *Post) owned(ctx context.Context, callerID, id uuid.UUID, action string) (model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	if post.UserID != callerID {
		return model.Post{}, apperr.NewErrForbidden(action)
	}
	return post, nil
}
