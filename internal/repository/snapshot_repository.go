package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// SnapshotRecord is the persisted shape of a market-insight snapshot. The
// digest itself is stored as a JSON payload.
type SnapshotRecord struct {
	ID          string
	GeneratedAt time.Time
	Payload     string
}

// SnapshotRepository provides data access methods for the insight_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create inserts a new snapshot record.
func (r *SnapshotRepository) Create(record SnapshotRecord) error {
	query := `
        INSERT INTO insight_snapshot (id, generated_at, payload)
        VALUES (?, ?, ?)
    `

	_, err := r.db.Exec(query,
		record.ID,
		record.GeneratedAt.Format(time.RFC3339),
		record.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to insert insight snapshot: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recently generated snapshot. Returns
// sql.ErrNoRows when no snapshot has been taken yet.
func (r *SnapshotRepository) GetLatest() (*SnapshotRecord, error) {
	query := `
        SELECT id, generated_at, payload
        FROM insight_snapshot
        ORDER BY generated_at DESC
        LIMIT 1
    `

	var record SnapshotRecord
	var generatedAt string

	err := r.db.QueryRow(query).Scan(&record.ID, &generatedAt, &record.Payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to query insight_snapshot table: %w", err)
	}

	record.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot generated_at: %w", err)
	}
	return &record, nil
}

// Prune deletes all snapshots except the newest keep rows.
func (r *SnapshotRepository) Prune(keep int) error {
	query := `
        DELETE FROM insight_snapshot
        WHERE id NOT IN (
            SELECT id FROM insight_snapshot
            ORDER BY generated_at DESC
            LIMIT ?
        )
    `

	if _, err := r.db.Exec(query, keep); err != nil {
		return fmt.Errorf("failed to prune insight snapshots: %w", err)
	}
	return nil
}
