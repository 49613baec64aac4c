package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/model"
)

var postColumnNames = []string{"id", "user_id", "content", "attachment_key", "attachment_content_type", "created_at", "updated_at"}

func TestPostRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	post := model.Post{ID: uuid.New(), UserID: uuid.New(), Content: "hello", CreatedAt: now, UpdatedAt: now}
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs(post.ID, post.UserID, post.Content, now, now).
		WillReturnRows(pgxmock.NewRows(postColumnNames).
			AddRow(post.ID, post.UserID, post.Content, "", "", now, now))

	saved, err := NewPostRepository(mock).Create(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, post, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface, id uuid.UUID)
		wantErr   error
		errMsg    string
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(`SELECT id, user_id, content`).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(postColumnNames).
						AddRow(id, uuid.New(), "hello", "posts/key", "image/png", time.Now(), time.Now()))
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(`SELECT id, user_id, content`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(`SELECT id, user_id, content`).
					WithArgs(id).
					WillReturnError(errors.New("timeout"))
			},
			errMsg: "failed to get post by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			id := uuid.New()
			tt.setupMock(mock, id)

			post, err := NewPostRepository(mock).GetByID(context.Background(), id)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, id, post.ID)
				assert.True(t, post.HasAttachment())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`FROM posts WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(postColumnNames).
			AddRow(uuid.New(), userID, "one", "", "", now, now).
			AddRow(uuid.New(), userID, "two", "", "", now, now))

	posts, err := NewPostRepository(mock).ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "one", posts[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM posts ORDER BY`).
		WillReturnRows(pgxmock.NewRows(postColumnNames))

	posts, err := NewPostRepository(mock).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_UpdateContent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery(`UPDATE posts SET content`).
		WithArgs(id, "edited").
		WillReturnError(pgx.ErrNoRows)

	_, err = NewPostRepository(mock).UpdateContent(context.Background(), id, "edited")
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SetAttachment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`UPDATE posts SET attachment_key`).
		WithArgs(id, "posts/x/y", "text/plain").
		WillReturnRows(pgxmock.NewRows(postColumnNames).
			AddRow(id, uuid.New(), "hello", "posts/x/y", "text/plain", now, now))

	post, err := NewPostRepository(mock).SetAttachment(context.Background(), id, "posts/x/y", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", post.AttachmentContentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM posts`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = NewPostRepository(mock).Delete(context.Background(), id)
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
