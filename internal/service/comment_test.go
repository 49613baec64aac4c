package service

import (
	"context"
	"errors"
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

func TestComment_Create(t *testing.T) {
	author := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name     string
		params   model.CreateCommentParams
		setup    func(comments *mocks.CommentStore, posts *mocks.PostStore)
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name:     "content required",
			params:   model.CreateCommentParams{UserID: author, PostID: postID},
			setup:    func(*mocks.CommentStore, *mocks.PostStore) {},
			wantKind: apperr.KindValidation,
			wantErr:  true,
		},
		{
			name:     "post id required",
			params:   model.CreateCommentParams{UserID: author, Content: "hi"},
			setup:    func(*mocks.CommentStore, *mocks.PostStore) {},
			wantKind: apperr.KindValidation,
			wantErr:  true,
		},
		{
			name:   "post missing",
			params: model.CreateCommentParams{UserID: author, PostID: postID, Content: "hi"},
			setup: func(_ *mocks.CommentStore, posts *mocks.PostStore) {
				posts.On("GetByID", mock.Anything, postID).Return(model.Post{}, model.ErrNotFound).Once()
			},
			wantKind: apperr.KindNotFound,
			wantErr:  true,
		},
		{
			name:   "store failure",
			params: model.CreateCommentParams{UserID: author, PostID: postID, Content: "hi"},
			setup: func(comments *mocks.CommentStore, posts *mocks.PostStore) {
				posts.On("GetByID", mock.Anything, postID).Return(model.Post{ID: postID}, nil).Once()
				comments.On("Create", mock.Anything, mock.Anything).Return(model.Comment{}, errors.New("db down")).Once()
			},
			wantKind: apperr.KindInternal,
			wantErr:  true,
		},
		{
			name:   "created",
			params: model.CreateCommentParams{UserID: author, PostID: postID, Content: "hi"},
			setup: func(comments *mocks.CommentStore, posts *mocks.PostStore) {
				posts.On("GetByID", mock.Anything, postID).Return(model.Post{ID: postID}, nil).Once()
				comments.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
					return c.UserID == author && c.PostID == postID && c.Content == "hi"
				})).Return(model.Comment{ID: uuid.New(), UserID: author, PostID: postID, Content: "hi"}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := mocks.NewCommentStore(t)
			posts := mocks.NewPostStore(t)
			tt.setup(comments, posts)

			comment, err := NewComment(comments, posts, testutil.MakeNoopLogger()).Create(context.Background(), tt.params)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, author, comment.UserID)
		})
	}
}

func TestComment_UpdateAndDelete_AuthorOnly(t *testing.T) {
	author := uuid.New()
	commentID := uuid.New()
	stored := model.Comment{ID: commentID, UserID: author, Content: "hi"}

	comments := mocks.NewCommentStore(t)
	comments.On("GetByID", mock.Anything, commentID).Return(stored, nil).Times(4)
	comments.On("UpdateContent", mock.Anything, commentID, "edited").Return(model.Comment{ID: commentID, UserID: author, Content: "edited"}, nil).Once()
	comments.On("Delete", mock.Anything, commentID).Return(nil).Once()

	svc := NewComment(comments, mocks.NewPostStore(t), testutil.MakeNoopLogger())
	ctx := context.Background()

	_, err := svc.Update(ctx, model.UpdateCommentParams{UserID: uuid.New(), CommentID: commentID, Content: "edited"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	updated, err := svc.Update(ctx, model.UpdateCommentParams{UserID: author, CommentID: commentID, Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	err = svc.Delete(ctx, uuid.New(), commentID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, svc.Delete(ctx, author, commentID))
}

func TestComment_Get_NotFound(t *testing.T) {
	id := uuid.New()
	comments := mocks.NewCommentStore(t)
	comments.On("GetByID", mock.Anything, id).Return(model.Comment{}, model.ErrNotFound).Once()

	_, err := NewComment(comments, mocks.NewPostStore(t), testutil.MakeNoopLogger()).Get(context.Background(), id)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestComment_Lists(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	comments := mocks.NewCommentStore(t)
	comments.On("ListByPost", mock.Anything, postID).Return([]model.Comment{{PostID: postID}}, nil).Once()
	comments.On("ListByUser", mock.Anything, userID).Return([]model.Comment{}, nil).Once()

	svc := NewComment(comments, mocks.NewPostStore(t), testutil.MakeNoopLogger())

	byPost, err := svc.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Len(t, byPost, 1)

	byUser, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, byUser)
}
