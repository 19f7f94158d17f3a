package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"accounts", "session"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "expected table %s", table)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO accounts(username, data) VALUES('alice', x'7b7d')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Re-opening must not wipe existing data.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM accounts`).Scan(&count))
	require.Equal(t, 1, count)
}
