package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommentStore defines persistence operations for comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Comment is a reply to a post.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCommentParams contains parameters to create a comment.
type CreateCommentParams struct {
	UserID  uuid.UUID
	PostID  uuid.UUID
	Content string
}

// UpdateCommentParams contains parameters to update a comment.
type UpdateCommentParams struct {
	UserID    uuid.UUID
	CommentID uuid.UUID
	Content   string
}
