package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/postboard-server/internal/model"
)

var (
	_ model.UserStore    = (*UserRepository)(nil)
	_ model.SessionStore = (*UserRepository)(nil)
)

const userColumns = `id, username, email, password_hash, refresh_tokens, created_at, updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.RefreshTokens,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return model.User{}, wrapError(err, "get user by email")
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, wrapError(err, "get user by id")
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err, "list users")
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, wrapError(err, "scan user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "iterate users")
	}

	return users, nil
}

// Create inserts the user together with its initial refresh token whitelist.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, email, password_hash, refresh_tokens, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	tokens := user.RefreshTokens
	if tokens == nil {
		tokens = []string{}
	}

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, tokens,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return model.User{}, wrapError(err, "create user")
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	query := `UPDATE users
			  SET username = COALESCE(NULLIF($2, ''), username),
			      email = COALESCE(NULLIF($3, ''), email),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, params.Username, params.Email))
	if err != nil {
		return model.User{}, wrapError(err, "update user")
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrapError(err, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// AppendRefreshToken adds token to the whitelist, keeping only the newest limit
// entries when limit is positive.
func (r *UserRepository) AppendRefreshToken(ctx context.Context, userID uuid.UUID, token string, limit int) error {
	query := `UPDATE users
			  SET refresh_tokens = CASE
			          WHEN $3::int > 0
			          THEN (array_append(refresh_tokens, $2::text))[GREATEST(cardinality(refresh_tokens) + 2 - $3::int, 1):]
			          ELSE array_append(refresh_tokens, $2::text)
			      END,
			      updated_at = NOW()
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, token, limit)
	if err != nil {
		return wrapError(err, "append refresh token")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// RotateRefreshToken swaps presented for next in a single conditional update.
// Two concurrent rotations of the same token cannot both succeed: the second
// update re-checks the predicate after the first commits and matches no row.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID uuid.UUID, presented, next string) error {
	query := `UPDATE users
			  SET refresh_tokens = array_append(array_remove(refresh_tokens, $2::text), $3::text),
			      updated_at = NOW()
			  WHERE id = $1 AND $2::text = ANY(refresh_tokens)`

	tag, err := r.db.Exec(ctx, query, userID, presented, next)
	if err != nil {
		return wrapError(err, "rotate refresh token")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRefreshTokenNotPresent
	}

	return nil
}

func (r *UserRepository) RemoveRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	query := `UPDATE users
			  SET refresh_tokens = array_remove(refresh_tokens, $2::text),
			      updated_at = NOW()
			  WHERE id = $1 AND $2::text = ANY(refresh_tokens)`

	tag, err := r.db.Exec(ctx, query, userID, token)
	if err != nil {
		return wrapError(err, "remove refresh token")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRefreshTokenNotPresent
	}

	return nil
}

func (r *UserRepository) ClearRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET refresh_tokens = '{}', updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return wrapError(err, "clear refresh tokens")
	}

	return nil
}
