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

	// A pooled second connection would see its own empty in-memory DB.
	db.SetMaxOpenConns(1)

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

	// Verify all tables were created
	tables := []string{
		"project_types",
		"platforms",
		"projects",
		"project_platforms",
		"project_collaborators",
		"notifications",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestStatusConstraint verifies the projects status CHECK constraint
func TestStatusConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO project_types (name) VALUES ('Web')`)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO projects (name, project_type_id, start_date, status) VALUES (?, ?, ?, ?)`,
		"Bad Status", 1, "2024-01-01", "Unknown")
	require.Error(t, err, "should fail with invalid status")

	_, err = db.Exec(
		`INSERT INTO projects (name, project_type_id, start_date, status) VALUES (?, ?, ?, ?)`,
		"Good Status", 1, "2024-01-01", "Testing")
	require.NoError(t, err)
}

// TestTimelineUniquePair verifies one entry per (project, assigned date)
func TestTimelineUniquePair(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO project_types (name) VALUES ('Web')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO platforms (name) VALUES ('AWS'), ('GCP')`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO projects (name, project_type_id, start_date) VALUES (?, ?, ?)`,
		"Demo", 1, "2024-01-01")
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO project_platforms (project_id, platform_id, assigned_date) VALUES (?, ?, ?)`,
		1, 1, "2024-01-01")
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO project_platforms (project_id, platform_id, assigned_date) VALUES (?, ?, ?)`,
		1, 2, "2024-01-01")
	require.Error(t, err, "should fail on duplicate (project, date) pair")
}
