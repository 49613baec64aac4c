package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/postboard-server/internal/model"
)

// wrapError maps driver errors onto model sentinels and wraps everything else
// with the failed action.
func wrapError(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return model.ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return model.ErrNotFound
		}
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}
