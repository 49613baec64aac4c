package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/apperr"
	"github.com/dtroode/postboard-server/internal/mocks"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/testutil"
)

func TestUser_Update(t *testing.T) {
	self := uuid.New()

	t.Run("other user is forbidden", func(t *testing.T) {
		svc := NewUser(mocks.NewUserStore(t), testutil.MakeNoopLogger())

		_, err := svc.Update(context.Background(), uuid.New(), self, model.UpdateUserParams{Username: "x"})
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("duplicate is conflict", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("Update", mock.Anything, self, model.UpdateUserParams{Email: "taken@example.com"}).Return(model.User{}, model.ErrConflict).Once()

		_, err := NewUser(store, testutil.MakeNoopLogger()).Update(context.Background(), self, self, model.UpdateUserParams{Email: " taken@example.com "})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("self", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("Update", mock.Anything, self, model.UpdateUserParams{Username: "new"}).Return(model.User{ID: self, Username: "new"}, nil).Once()

		user, err := NewUser(store, testutil.MakeNoopLogger()).Update(context.Background(), self, self, model.UpdateUserParams{Username: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", user.Username)
	})
}

func TestUser_Delete(t *testing.T) {
	self := uuid.New()

	store := mocks.NewUserStore(t)
	store.On("Delete", mock.Anything, self).Return(model.ErrNotFound).Once()

	svc := NewUser(store, testutil.MakeNoopLogger())

	err := svc.Delete(context.Background(), uuid.New(), self)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	err = svc.Delete(context.Background(), self, self)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUser_Get(t *testing.T) {
	id := uuid.New()

	store := mocks.NewUserStore(t)
	store.On("GetByID", mock.Anything, id).Return(model.User{ID: id, Username: "alice"}, nil).Once()
	store.On("List", mock.Anything).Return([]model.User{{ID: id}}, nil).Once()

	svc := NewUser(store, testutil.MakeNoopLogger())

	user, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
