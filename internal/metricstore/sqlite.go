package metricstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// SQLiteStore is a Store backed by the local fund_metric table. It serves
// development and offline deployments where no remote index is configured,
// and is populated through the import command.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore over the provided database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LookupMetric returns the latest value recorded for a fund/metric pair.
// Missing pairs and NULL values return ("", false, nil).
func (s *SQLiteStore) LookupMetric(ctx context.Context, fundName, metricKey string) (string, bool, error) {
	query := `
		SELECT value
		FROM fund_metric
		WHERE fund_name = ? AND metric_key = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var value sql.NullString
	err := s.db.QueryRowContext(ctx, query, fundName, metricKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// ListFunds returns fund names tagged with the title-cased risk profile, or
// every known fund name when riskProfile is empty. Results are sorted
// ascending for deterministic downstream ordering.
func (s *SQLiteStore) ListFunds(ctx context.Context, riskProfile string) ([]string, error) {
	query := `
		SELECT DISTINCT fund_name
		FROM fund_metric
		ORDER BY fund_name
	`
	var args []any

	if riskProfile != "" {
		query = `
			SELECT DISTINCT fund_name
			FROM fund_metric
			WHERE metric_key = ? AND value = ?
			ORDER BY fund_name
		`
		args = append(args, KeyRiskProfile, string(model.ParseRiskProfile(riskProfile)))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan fund name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	return names, nil
}

// Upsert writes one fund-metric fact, replacing any previous value for the
// same (fund, metric) pair. Used by the import command.
func (s *SQLiteStore) Upsert(ctx context.Context, id, fundName, metricKey string, value *string) error {
	query := `
		INSERT INTO fund_metric (id, fund_name, metric_key, value, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(fund_name, metric_key) DO UPDATE SET
			value = excluded.value,
			recorded_at = excluded.recorded_at
	`

	var v any
	if value != nil {
		v = *value
	}

	_, err := s.db.ExecContext(ctx, query, id, fundName, metricKey, v, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert fund metric: %w", err)
	}
	return nil
}
