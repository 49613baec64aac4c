package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager stores the authenticated user ID on a request context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
