package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/postboard-server/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

const commentColumns = `id, post_id, user_id, content, created_at, updated_at`

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func scanComment(row pgx.Row) (model.Comment, error) {
	var comment model.Comment
	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	return comment, err
}

func (r *CommentRepository) collect(rows pgx.Rows) ([]model.Comment, error) {
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, wrapError(err, "scan comment")
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "iterate comments")
	}

	return comments, nil
}

// Create inserts a comment. A missing post surfaces as model.ErrNotFound
// through the foreign key.
func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `INSERT INTO comments (id, post_id, user_id, content, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + commentColumns

	saved, err := scanComment(r.db.QueryRow(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt, comment.UpdatedAt,
	))
	if err != nil {
		return model.Comment{}, wrapError(err, "create comment")
	}

	return saved, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.Comment{}, wrapError(err, "get comment by id")
	}

	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, wrapError(err, "list comments by post")
	}

	return r.collect(rows)
}

func (r *CommentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapError(err, "list comments by user")
	}

	return r.collect(rows)
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (model.Comment, error) {
	query := `UPDATE comments SET content = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRow(ctx, query, id, content))
	if err != nil {
		return model.Comment{}, wrapError(err, "update comment")
	}

	return comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return wrapError(err, "delete comment")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
