package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/db"
)

// NewTestDB opens a migrated SQLite database in a temp dir that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// SeedUser inserts a user row so foreign keys are satisfied.
func SeedUser(t *testing.T, conn *sql.DB, id, email string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, 'x', ?)`,
		id, email, time.Now().UTC().Format(time.RFC3339Nano),
	)
	require.NoError(t, err)
}
