package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"localstore", "leaderboard"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}

func TestInitDatabase_Reopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent on an already-migrated database.
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
