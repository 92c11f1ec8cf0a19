package service

import (
	"context"
	"database/sql"

	"github.com/hkpamc/fund-advisor-backend/internal/database"
	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
	"github.com/hkpamc/fund-advisor-backend/internal/version"
)

// SystemService handles health and version reporting.
type SystemService struct {
	db    *sql.DB
	store metricstore.Store
}

// NewSystemService creates a new SystemService.
func NewSystemService(db *sql.DB, store metricstore.Store) *SystemService {
	return &SystemService{
		db:    db,
		store: store,
	}
}

// CheckHealth verifies the database connection and metric store
// reachability. The store check issues a cheap universe listing; an
// unreachable store fails the health check so orchestrators restart the
// service rather than serve empty analytics.
func (s *SystemService) CheckHealth(ctx context.Context) error {
	if err := database.HealthCheck(s.db); err != nil {
		return err
	}
	_, err := s.store.ListFunds(ctx, "")
	return err
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}
