package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

const attachmentFormField = "file"

// AttachmentService defines post attachment operations.
type AttachmentService interface {
	Upload(ctx context.Context, callerID, postID uuid.UUID, body io.Reader, attachment model.Attachment) (model.Post, error)
	Open(ctx context.Context, postID uuid.UUID) (io.ReadCloser, model.Post, error)
}

// Attachment handles HTTP endpoints for post attachments.
type Attachment struct {
	attachmentService AttachmentService
	contextManager    model.ContextManager
	logger            *logger.Logger
}

// NewAttachment creates a new Attachment handler.
func NewAttachment(attachmentService AttachmentService, contextManager model.ContextManager, logger *logger.Logger) *Attachment {
	return &Attachment{attachmentService: attachmentService, contextManager: contextManager, logger: logger}
}

// Upload stores the multipart "file" field as the post attachment, replacing any previous one.
func (h *Attachment) Upload(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile(attachmentFormField)
	if err != nil {
		return apperr.NewErrValidation("File is required")
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	h.logger.Debug("Attachment handler: processing upload",
		"post_id", postID,
		"size", header.Size)

	post, err := h.attachmentService.Upload(c.UserContext(), userID, postID, file, model.Attachment{
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
	})
	if err != nil {
		return err
	}

	return c.JSON(newPostResponse(post))
}

// Download writes the attachment body with its stored content type.
// The object is copied before returning so the read finishes within the request deadline.
func (h *Attachment) Download(c *fiber.Ctx) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	body, post, err := h.attachmentService.Open(c.UserContext(), postID)
	if err != nil {
		return err
	}
	defer body.Close()

	c.Set(fiber.HeaderContentType, post.AttachmentContentType)
	if _, err := io.Copy(c.Response().BodyWriter(), body); err != nil {
		return fmt.Errorf("failed to read attachment: %w", err)
	}

	return nil
}
