package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", "fetch_history").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "table fetch_history not found")
}

// TestMigrations_Idempotent verifies the schema can be applied on every start
func TestMigrations_Idempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestOutcomeConstraint verifies unknown outcomes are rejected
func TestOutcomeConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO fetch_history (id, source, page_limit, outcome, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"h1", "web", 30, "exploded")
	require.Error(t, err)
}
