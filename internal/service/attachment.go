package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Attachment stores one file per post in object storage.
type Attachment struct {
	posts   *Post
	storage model.Storage
	logger  *logger.Logger
}

func NewAttachment(posts *Post, storage model.Storage, logger *logger.Logger) *Attachment {
	return &Attachment{posts: posts, storage: storage, logger: logger}
}

// Upload replaces the post's attachment. Only the author may upload.
func (s *Attachment) Upload(ctx context.Context, callerID, postID uuid.UUID, body io.Reader, attachment model.Attachment) (model.Post, error) {
	post, err := s.posts.owned(ctx, callerID, postID, "attach files to this post")
	if err != nil {
		return model.Post{}, err
	}

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("posts/%s/%s", postID, uuid.New())
	if err := s.storage.Upload(ctx, key, body, attachment.Size, contentType); err != nil {
		s.logger.Error("Attachment service: failed to upload object",
			"post_id", postID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	updated, err := s.posts.postStore.SetAttachment(ctx, postID, key, contentType)
	if err != nil {
		_ = s.storage.Delete(ctx, key)
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, apperr.NewErrPostNotFound(postID.String())
		}
		return model.Post{}, fmt.Errorf("failed to set post attachment: %w", err)
	}

	if post.HasAttachment() {
		if err := s.storage.Delete(ctx, post.AttachmentKey); err != nil {
			s.logger.Warn("Attachment service: failed to delete replaced object",
				"post_id", postID,
				"key", post.AttachmentKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Attachment service: attachment uploaded",
		"post_id", postID,
		"size", attachment.Size)

	return updated, nil
}

// Open returns the attachment content. The caller must close the reader.
func (s *Attachment) Open(ctx context.Context, postID uuid.UUID) (io.ReadCloser, model.Post, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, model.Post{}, err
	}
	if !post.HasAttachment() {
		return nil, model.Post{}, apperr.NewErrAttachmentNotFound(postID.String())
	}

	rc, err := s.storage.Download(ctx, post.AttachmentKey)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.Post{}, apperr.NewErrAttachmentNotFound(postID.String())
	}
	if err != nil {
		return nil, model.Post{}, fmt.Errorf("failed to download attachment: %w", err)
	}

	return rc, post, nil
}
