package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/repository"
)

// snapshotRetention is how many historical snapshots are kept after each
// refresh.
const snapshotRetention = 24

// SnapshotService persists periodic market-insight digests so dashboard
// reads serve the latest snapshot instead of triggering a full universe
// scan per request.
type SnapshotService struct {
	insights  *InsightService
	snapshots *repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService with the provided
// dependencies.
func NewSnapshotService(insights *InsightService, snapshots *repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{insights: insights, snapshots: snapshots}
}

// Refresh generates a fresh market digest and persists it, pruning old
// snapshots past the retention window.
func (s *SnapshotService) Refresh(ctx context.Context) (*model.InsightSnapshot, error) {
	insights, err := s.insights.MarketInsights(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot refresh failed: %w", err)
	}

	snapshot := model.InsightSnapshot{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Insights:    insights,
	}

	payload, err := json.Marshal(snapshot.Insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	record := repository.SnapshotRecord{
		ID:          snapshot.ID,
		GeneratedAt: snapshot.GeneratedAt,
		Payload:     string(payload),
	}
	if err := s.snapshots.Create(record); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSnapshot, err)
	}

	if err := s.snapshots.Prune(snapshotRetention); err != nil {
		log.Printf("[INSIGHT_SNAPSHOT] prune failed: %v", err)
	}

	return &snapshot, nil
}

// RunScheduled is the cron entry point: it refreshes and logs, swallowing
// the error because the scheduler has no caller to report to.
func (s *SnapshotService) RunScheduled() {
	snapshot, err := s.Refresh(context.Background())
	if err != nil {
		log.Printf("[INSIGHT_SNAPSHOT] scheduled refresh failed: %v", err)
		return
	}
	log.Printf("[INSIGHT_SNAPSHOT] refreshed snapshot %s", snapshot.ID)
}

// Latest returns the most recent snapshot.
func (s *SnapshotService) Latest() (*model.InsightSnapshot, error) {
	record, err := s.snapshots.GetLatest()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no insight snapshot yet: %w", apperrors.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveSnapshot, err)
	}

	snapshot := model.InsightSnapshot{
		ID:          record.ID,
		GeneratedAt: record.GeneratedAt,
	}
	if err := json.Unmarshal([]byte(record.Payload), &snapshot.Insights); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}
	return &snapshot, nil
}
