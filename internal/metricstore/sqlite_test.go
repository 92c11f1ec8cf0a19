package metricstore_test

import (
	"context"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
	"github.com/hkpamc/fund-advisor-backend/internal/testutil"
)

func strPtr(s string) *string {
	return &s
}

// TestSQLiteStore_LookupMetric tests the local fund_metric lookups.
//
// WHY: The SQLite store backs offline deployments, so its contract must
// match the remote index: missing pairs and NULL values read as not-found
// without an error, and an upsert replaces the previous value for the same
// pair.
func TestSQLiteStore_LookupMetric(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips an upserted value", func(t *testing.T) {
		store := metricstore.NewSQLiteStore(testutil.SetupTestDB(t))

		err := store.Upsert(ctx, "m-1", "Alpha Fund", "365D", strPtr("42.5"))
		if err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}

		value, found, err := store.LookupMetric(ctx, "Alpha Fund", "365D")
		if err != nil {
			t.Fatalf("LookupMetric() returned unexpected error: %v", err)
		}
		if !found || value != "42.5" {
			t.Errorf("Expected (42.5, true), got (%q, %v)", value, found)
		}
	})

	t.Run("missing pair reads as not found without an error", func(t *testing.T) {
		store := metricstore.NewSQLiteStore(testutil.SetupTestDB(t))

		value, found, err := store.LookupMetric(ctx, "Ghost Fund", "365D")
		if err != nil {
			t.Fatalf("LookupMetric() returned unexpected error: %v", err)
		}
		if found || value != "" {
			t.Errorf("Expected not found, got (%q, %v)", value, found)
		}
	})

	t.Run("NULL value reads as not found", func(t *testing.T) {
		store := metricstore.NewSQLiteStore(testutil.SetupTestDB(t))

		if err := store.Upsert(ctx, "m-1", "Alpha Fund", "365D", nil); err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}

		_, found, err := store.LookupMetric(ctx, "Alpha Fund", "365D")
		if err != nil {
			t.Fatalf("LookupMetric() returned unexpected error: %v", err)
		}
		if found {
			t.Error("Expected a NULL value to read as not found")
		}
	})

	t.Run("upsert replaces the previous value", func(t *testing.T) {
		store := metricstore.NewSQLiteStore(testutil.SetupTestDB(t))

		if err := store.Upsert(ctx, "m-1", "Alpha Fund", "365D", strPtr("10")); err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}
		if err := store.Upsert(ctx, "m-2", "Alpha Fund", "365D", strPtr("20")); err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}

		value, found, err := store.LookupMetric(ctx, "Alpha Fund", "365D")
		if err != nil {
			t.Fatalf("LookupMetric() returned unexpected error: %v", err)
		}
		if !found || value != "20" {
			t.Errorf("Expected the replaced value 20, got (%q, %v)", value, found)
		}
	})
}

// TestSQLiteStore_ListFunds tests universe and risk-filtered listing.
func TestSQLiteStore_ListFunds(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *metricstore.SQLiteStore {
		t.Helper()
		store := metricstore.NewSQLiteStore(testutil.SetupTestDB(t))
		facts := []struct {
			id, fund, key, value string
		}{
			{"m-1", "Beta Fund", "Risk Profile", "High"},
			{"m-2", "Beta Fund", "365D", "60"},
			{"m-3", "Alpha Fund", "Risk Profile", "Low"},
			{"m-4", "Gamma Fund", "Risk Profile", "Low"},
		}
		for _, fact := range facts {
			if err := store.Upsert(ctx, fact.id, fact.fund, fact.key, strPtr(fact.value)); err != nil {
				t.Fatalf("Upsert() returned unexpected error: %v", err)
			}
		}
		return store
	}

	t.Run("empty filter lists the whole universe sorted", func(t *testing.T) {
		store := seed(t)

		names, err := store.ListFunds(ctx, "")
		if err != nil {
			t.Fatalf("ListFunds() returned unexpected error: %v", err)
		}

		want := []string{"Alpha Fund", "Beta Fund", "Gamma Fund"}
		if len(names) != len(want) {
			t.Fatalf("Expected %d funds, got %d", len(want), len(names))
		}
		for i, name := range want {
			if names[i] != name {
				t.Errorf("Position %d: expected %q, got %q", i, name, names[i])
			}
		}
	})

	t.Run("risk filter is case-insensitive", func(t *testing.T) {
		store := seed(t)

		names, err := store.ListFunds(ctx, "low")
		if err != nil {
			t.Fatalf("ListFunds() returned unexpected error: %v", err)
		}

		if len(names) != 2 || names[0] != "Alpha Fund" || names[1] != "Gamma Fund" {
			t.Errorf("Expected the two low-risk funds, got %v", names)
		}
	})
}
