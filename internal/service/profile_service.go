package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// profileMetricKeys is the fixed ordered set of metrics fetched per fund.
var profileMetricKeys = []string{
	metricstore.KeyRiskProfile,
	metricstore.KeyExpenseRatio,
	metricstore.KeyReturn365D,
	metricstore.KeyReturnYTD,
	metricstore.KeyNav,
}

// profileConcurrency bounds the per-fund fan-out in batch profile loads.
const profileConcurrency = 8

// ProfileService assembles complete FundProfile records from individual
// metric lookups. Profiles are built transiently per request and owned by
// the calling operation; nothing is cached across calls.
type ProfileService struct {
	store metricstore.Store
}

// NewProfileService creates a new ProfileService with the provided store.
func NewProfileService(store metricstore.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Store exposes the underlying metric store for operations that need raw
// lookups beyond the profile metric set.
func (s *ProfileService) Store() metricstore.Store {
	return s.store
}

// lookupResult is one metric lookup outcome, collected keyed by metric so
// assembly stays deterministic regardless of completion order.
type lookupResult struct {
	value string
	found bool
	err   error
}

// BuildProfile assembles the profile for one fund. The five metric lookups
// run in parallel; each missing or failed lookup leaves its field nil.
// Individual store failures are logged and absorbed as missing values. The
// returned error is non-nil only when every lookup failed against a failing
// store, so callers can tell an outage apart from sparse data.
func (s *ProfileService) BuildProfile(ctx context.Context, fundName string) (model.FundProfile, error) {
	profile := model.FundProfile{
		Name:        fundName,
		RiskProfile: model.RiskUnknown,
	}

	results := make([]lookupResult, len(profileMetricKeys))

	var g errgroup.Group
	for i, key := range profileMetricKeys {
		i, key := i, key
		g.Go(func() error {
			value, found, err := s.store.LookupMetric(ctx, fundName, key)
			results[i] = lookupResult{value: value, found: found, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var found, failed int
	for i, key := range profileMetricKeys {
		result := results[i]
		if result.err != nil {
			log.Printf("[PROFILE_BUILDER] lookup failed for %q/%q: %v", fundName, key, result.err)
			failed++
			continue
		}
		if !result.found {
			continue
		}
		found++

		switch key {
		case metricstore.KeyRiskProfile:
			profile.RiskProfile = model.ParseRiskProfile(result.value)
		case metricstore.KeyExpenseRatio:
			profile.ExpenseRatio = ParseMetricValue(result.value)
		case metricstore.KeyReturn365D:
			profile.Return365D = ParseMetricValue(result.value)
		case metricstore.KeyReturnYTD:
			profile.ReturnYTD = ParseMetricValue(result.value)
		case metricstore.KeyNav:
			profile.Nav = ParseMetricValue(result.value)
		}
	}

	if found == 0 && failed > 0 {
		return profile, fmt.Errorf("%w: no metrics obtainable for %q", apperrors.ErrStoreUnavailable, fundName)
	}
	return profile, nil
}

// BuildProfiles assembles profiles for a list of funds with bounded
// concurrency, preserving input order in the result. A fund whose lookups
// all fail still yields a name-only profile so batch operations continue
// past it; the aggregate ErrNoFundData is returned only when not a single
// metric could be obtained for any fund.
func (s *ProfileService) BuildProfiles(ctx context.Context, fundNames []string) ([]model.FundProfile, error) {
	profiles := make([]model.FundProfile, len(fundNames))
	errs := make([]error, len(fundNames))

	var g errgroup.Group
	g.SetLimit(profileConcurrency)
	for i, name := range fundNames {
		i, name := i, name
		g.Go(func() error {
			profiles[i], errs[i] = s.BuildProfile(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	allFailed := len(fundNames) > 0
	for _, err := range errs {
		if err == nil {
			allFailed = false
		}
	}
	if allFailed {
		return profiles, fmt.Errorf("%w: all %d funds failed", apperrors.ErrNoFundData, len(fundNames))
	}
	return profiles, nil
}

// FundsByRisk lists the funds tagged with the given risk profile and builds
// their profiles.
func (s *ProfileService) FundsByRisk(ctx context.Context, riskProfile string) ([]model.FundProfile, error) {
	names, err := s.store.ListFunds(ctx, riskProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s risk funds: %w", riskProfile, err)
	}
	return s.BuildProfiles(ctx, names)
}

// AllFundNames returns the known fund universe.
func (s *ProfileService) AllFundNames(ctx context.Context) ([]string, error) {
	names, err := s.store.ListFunds(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list fund universe: %w", err)
	}
	return names, nil
}
