package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// User manages user profiles. Only the owner may change or delete a profile.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{userStore: userStore, logger: logger}
}

func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewErrUserNotFound(id.String())
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *User) Update(ctx context.Context, callerID, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	if callerID != id {
		return model.User{}, apperr.NewErrForbidden("update another user")
	}

	params.Username = strings.TrimSpace(params.Username)
	params.Email = strings.TrimSpace(params.Email)

	user, err := s.userStore.Update(ctx, id, params)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.User{}, apperr.NewErrUserNotFound(id.String())
	case errors.Is(err, model.ErrConflict):
		return model.User{}, apperr.NewErrUsernameOrEmailTaken()
	case err != nil:
		s.logger.Error("User service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", id)

	return user, nil
}

// Delete removes the user. Posts and comments go with it.
func (s *User) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if callerID != id {
		return apperr.NewErrForbidden("delete another user")
	}

	err := s.userStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewErrUserNotFound(id.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}
