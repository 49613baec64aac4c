package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestMigrate_PropagatesGooseError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	gooseUp = func(context.Context, *sql.DB) error {
		return errors.New("boom")
	}

	err := Migrate(context.Background(), "postgres://u:p@127.0.0.1:1/db?sslmode=disable")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}

func TestMigrate_Success(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	called := false
	gooseUp = func(context.Context, *sql.DB) error {
		called = true
		return nil
	}

	require.NoError(t, Migrate(context.Background(), "postgres://u:p@127.0.0.1:1/db?sslmode=disable"))
	assert.True(t, called)
}
