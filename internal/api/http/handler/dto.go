package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func newTokenResponse(pair model.TokenPair) tokenResponse {
	return tokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// userResponse never carries the password hash or refresh tokens.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type postRequest struct {
	Content string `json:"content"`
}

type attachmentResponse struct {
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

type postResponse struct {
	ID         uuid.UUID           `json:"id"`
	UserID     uuid.UUID           `json:"userId"`
	Content    string              `json:"content"`
	Attachment *attachmentResponse `json:"attachment,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func newPostResponse(post model.Post) postResponse {
	resp := postResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.HasAttachment() {
		resp.Attachment = &attachmentResponse{
			ContentType: post.AttachmentContentType,
			URL:         "/posts/" + post.ID.String() + "/attachment",
		}
	}

	return resp
}

type createCommentRequest struct {
	PostID  uuid.UUID `json:"postId"`
	Content string    `json:"content"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCommentResponse(comment model.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
