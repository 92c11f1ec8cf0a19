package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Fund metric table (local metric store)
		CREATE TABLE fund_metric (
			id TEXT PRIMARY KEY,
			fund_name TEXT NOT NULL,
			metric_key TEXT NOT NULL,
			value TEXT,
			recorded_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			UNIQUE (fund_name, metric_key)
		);

		CREATE INDEX idx_fund_metric_metric_key ON fund_metric (metric_key);

		-- Lead table
		CREATE TABLE lead (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email_encrypted TEXT NOT NULL,
			phone_encrypted TEXT NOT NULL,
			investment_amount TEXT,
			risk_preference TEXT,
			investment_horizon TEXT,
			created_at TEXT NOT NULL
		);

		-- Insight snapshot table
		CREATE TABLE insight_snapshot (
			id TEXT PRIMARY KEY,
			generated_at TEXT NOT NULL,
			payload TEXT NOT NULL
		);

		CREATE INDEX idx_insight_snapshot_generated_at ON insight_snapshot (generated_at);
	`

	_, err := db.Exec(schema)
	return err
}
