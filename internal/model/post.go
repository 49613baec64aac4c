package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context) ([]Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Post, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (Post, error)
	SetAttachment(ctx context.Context, id uuid.UUID, key, contentType string) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post is a user authored message.
type Post struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Content               string
	AttachmentKey         string
	AttachmentContentType string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasAttachment reports whether a file was uploaded for the post.
func (p Post) HasAttachment() bool {
	return p.AttachmentKey != ""
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	UserID  uuid.UUID
	Content string
}

// UpdatePostParams contains parameters to update a post.
type UpdatePostParams struct {
	UserID  uuid.UUID
	PostID  uuid.UUID
	Content string
}

// Attachment describes an uploaded post file.
type Attachment struct {
	ContentType string
	Size        int64
}
