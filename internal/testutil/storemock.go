package testutil

import (
	"context"
	"strings"
	"sync"
)

// FakeMetricStore is an in-memory metricstore.Store for tests. Funds are
// listed in seeding order so ordering assertions are deterministic.
// Failures can be injected per fund or globally.
//
// Example usage:
//
//	store := testutil.NewFakeMetricStore()
//	store.SeedFund("Alpha Fund").
//	    WithRiskProfile("High").
//	    WithReturn365D("80").
//	    WithExpenseRatio("2")
type FakeMetricStore struct {
	mu      sync.Mutex
	order   []string
	metrics map[string]map[string]string

	// LookupErr is returned from every LookupMetric call when set.
	LookupErr error
	// ListErr is returned from every ListFunds call when set.
	ListErr error
	// FailingFunds lists funds whose lookups all fail with LookupFailErr.
	FailingFunds map[string]error
}

// NewFakeMetricStore creates an empty FakeMetricStore.
func NewFakeMetricStore() *FakeMetricStore {
	return &FakeMetricStore{
		metrics:      map[string]map[string]string{},
		FailingFunds: map[string]error{},
	}
}

// FundSeed provides a fluent interface for seeding one fund's metrics.
type FundSeed struct {
	store *FakeMetricStore
	name  string
}

// SeedFund registers a fund and returns a builder for its metrics.
func (f *FakeMetricStore) SeedFund(name string) *FundSeed {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.metrics[name]; !ok {
		f.metrics[name] = map[string]string{}
		f.order = append(f.order, name)
	}
	return &FundSeed{store: f, name: name}
}

// SetMetric writes one raw metric value for a fund.
func (f *FakeMetricStore) SetMetric(fundName, metricKey, value string) {
	f.SeedFund(fundName)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metrics[fundName][metricKey] = value
}

// WithRiskProfile sets the fund's risk label.
func (s *FundSeed) WithRiskProfile(risk string) *FundSeed {
	s.store.SetMetric(s.name, "Risk Profile", risk)
	return s
}

// WithReturn365D sets the trailing-365-day return.
func (s *FundSeed) WithReturn365D(value string) *FundSeed {
	s.store.SetMetric(s.name, "365D", value)
	return s
}

// WithReturnYTD sets the year-to-date return.
func (s *FundSeed) WithReturnYTD(value string) *FundSeed {
	s.store.SetMetric(s.name, "Return YTD", value)
	return s
}

// WithExpenseRatio sets the total expense ratio.
func (s *FundSeed) WithExpenseRatio(value string) *FundSeed {
	s.store.SetMetric(s.name, "Total Expense Ratio", value)
	return s
}

// WithNav sets the net asset value.
func (s *FundSeed) WithNav(value string) *FundSeed {
	s.store.SetMetric(s.name, "Net Asset Value", value)
	return s
}

// WithMetric sets an arbitrary metric, e.g. a return period like "90D".
func (s *FundSeed) WithMetric(metricKey, value string) *FundSeed {
	s.store.SetMetric(s.name, metricKey, value)
	return s
}

// LookupMetric implements metricstore.Store.
func (f *FakeMetricStore) LookupMetric(_ context.Context, fundName, metricKey string) (string, bool, error) {
	if f.LookupErr != nil {
		return "", false, f.LookupErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.FailingFunds[fundName]; ok {
		return "", false, err
	}
	value, ok := f.metrics[fundName][metricKey]
	return value, ok, nil
}

// ListFunds implements metricstore.Store. Funds are returned in seeding
// order; a risk filter matches the "Risk Profile" metric case-insensitively.
func (f *FakeMetricStore) ListFunds(_ context.Context, riskProfile string) ([]string, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	names := []string{}
	for _, name := range f.order {
		if riskProfile != "" && !strings.EqualFold(f.metrics[name]["Risk Profile"], riskProfile) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
