package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesCredentialsTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='credentials'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "credentials", name)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db1, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	db2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}

func TestInitDatabase_BadPath(t *testing.T) {
	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "session.db"))
	require.Error(t, err)
}
