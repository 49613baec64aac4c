package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// UserService defines user profile operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, callerID, id uuid.UUID, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// User handles HTTP endpoints for user profiles.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

func (h *User) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(mapSlice(users, newUserResponse))
}

func (h *User) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(newUserResponse(user))
}

// Update changes the caller's own username or email.
func (h *User) Update(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.UserContext(), userID, id, model.UpdateUserParams{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(newUserResponse(user))
}

// Delete removes the caller's own account.
func (h *User) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c, h.contextManager)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.UserContext(), userID, id); err != nil {
		return err
	}

	h.logger.Info("User handler: user deleted", "user_id", id)

	return c.JSON(messageResponse{Message: "User deleted successfully"})
}
