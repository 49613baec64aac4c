package apperr

import "fmt"

func NewErrValidation(message string) *APIError {
	return New(KindValidation, message)
}

func NewErrInvalidBody() *APIError {
	return New(KindValidation, "Invalid request body")
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{Kind: KindConflict, Message: "Email already in use", Err: fmt.Errorf("email %q", email)}
}

func NewErrUsernameOrEmailTaken() *APIError {
	return New(KindConflict, "Username or email already exists")
}

// NewErrInvalidCredentials is deliberately the same for unknown emails and wrong passwords.
func NewErrInvalidCredentials() *APIError {
	return New(KindAuth, "Invalid email or password")
}

func NewErrInvalidRefreshToken() *APIError {
	return New(KindAuth, "Invalid refresh token")
}

func NewErrMissingAuthorizationToken() *APIError {
	return New(KindAuth, "Unauthorized: No token provided")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return New(KindAuth, "Unauthorized: Invalid token")
}

func NewErrForbidden(action string) *APIError {
	return New(KindForbidden, fmt.Sprintf("Not allowed to %s", action))
}

func NewErrUserNotFound(id string) *APIError {
	return &APIError{Kind: KindNotFound, Message: "User not found", Err: fmt.Errorf("user %s", id)}
}

func NewErrPostNotFound(id string) *APIError {
	return &APIError{Kind: KindNotFound, Message: "Post not found", Err: fmt.Errorf("post %s", id)}
}

func NewErrNoPostsForUser(id string) *APIError {
	return &APIError{Kind: KindNotFound, Message: "No posts found for this user", Err: fmt.Errorf("user %s", id)}
}

func NewErrCommentNotFound(id string) *APIError {
	return &APIError{Kind: KindNotFound, Message: "Comment not found", Err: fmt.Errorf("comment %s", id)}
}

func NewErrAttachmentNotFound(postID string) *APIError {
	return &APIError{Kind: KindNotFound, Message: "Attachment not found", Err: fmt.Errorf("post %s", postID)}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{Kind: KindInternal, Message: "Internal server error", Err: err}
}
