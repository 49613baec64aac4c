package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/postboard-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

const postColumns = `id, user_id, content, attachment_key, attachment_content_type, created_at, updated_at`

type PostRepository struct {
	db DB
}

func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.UserID, &post.Content, &post.AttachmentKey, &post.AttachmentContentType,
		&post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

func (r *PostRepository) collect(rows pgx.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, wrapError(err, "scan post")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "iterate posts")
	}

	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (id, user_id, content, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.UserID, post.Content, post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		return model.Post{}, wrapError(err, "create post")
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.Post{}, wrapError(err, "get post by id")
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, wrapError(err, "list posts")
	}

	return r.collect(rows)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapError(err, "list posts by user")
	}

	return r.collect(rows)
}

func (r *PostRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (model.Post, error) {
	query := `UPDATE posts SET content = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRow(ctx, query, id, content))
	if err != nil {
		return model.Post{}, wrapError(err, "update post")
	}

	return post, nil
}

func (r *PostRepository) SetAttachment(ctx context.Context, id uuid.UUID, key, contentType string) (model.Post, error) {
	query := `UPDATE posts SET attachment_key = $2, attachment_content_type = $3, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRow(ctx, query, id, key, contentType))
	if err != nil {
		return model.Post{}, wrapError(err, "set post attachment")
	}

	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return wrapError(err, "delete post")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
