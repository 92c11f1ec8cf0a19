package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/testutil"
)

// TestProfileService_BuildProfile tests single-fund profile assembly.
//
// WHY: Every downstream operation consumes FundProfile records, so the
// metric-to-field mapping, the nil optionals for sparse data, and the
// outage-versus-sparse distinction have to hold here.
func TestProfileService_BuildProfile(t *testing.T) {
	t.Run("maps all five metrics onto the profile", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Full Fund").
			WithRiskProfile("high").
			WithExpenseRatio("1.25").
			WithReturn365D("42.5").
			WithReturnYTD("12%").
			WithNav("8,950,000,000")

		svc := service.NewProfileService(store)
		profile, err := svc.BuildProfile(context.Background(), "Full Fund")
		if err != nil {
			t.Fatalf("BuildProfile() returned unexpected error: %v", err)
		}

		if profile.Name != "Full Fund" {
			t.Errorf("Expected name Full Fund, got %q", profile.Name)
		}
		if profile.RiskProfile != model.RiskHigh {
			t.Errorf("Expected High risk, got %q", profile.RiskProfile)
		}
		if profile.ExpenseRatio == nil || *profile.ExpenseRatio != 1.25 {
			t.Errorf("Unexpected expense ratio: %v", profile.ExpenseRatio)
		}
		if profile.Return365D == nil || *profile.Return365D != 42.5 {
			t.Errorf("Unexpected 365D return: %v", profile.Return365D)
		}
		if profile.ReturnYTD == nil || *profile.ReturnYTD != 12 {
			t.Errorf("Unexpected YTD return: %v", profile.ReturnYTD)
		}
		if profile.Nav == nil || *profile.Nav != 8950000000 {
			t.Errorf("Unexpected NAV: %v", profile.Nav)
		}
	})

	t.Run("missing metrics leave nil fields and an unknown risk", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Sparse Fund").WithReturn365D("10")

		svc := service.NewProfileService(store)
		profile, err := svc.BuildProfile(context.Background(), "Sparse Fund")
		if err != nil {
			t.Fatalf("BuildProfile() returned unexpected error: %v", err)
		}

		if profile.RiskProfile != model.RiskUnknown {
			t.Errorf("Expected unknown risk, got %q", profile.RiskProfile)
		}
		if profile.ExpenseRatio != nil || profile.ReturnYTD != nil || profile.Nav != nil {
			t.Errorf("Expected nil optionals, got %+v", profile)
		}
	})

	t.Run("reports an outage only when every lookup fails", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Broken Fund").WithReturn365D("10")
		store.FailingFunds["Broken Fund"] = errors.New("index timeout")

		svc := service.NewProfileService(store)
		_, err := svc.BuildProfile(context.Background(), "Broken Fund")
		if !errors.Is(err, apperrors.ErrStoreUnavailable) {
			t.Errorf("Expected ErrStoreUnavailable, got %v", err)
		}
	})
}

// TestProfileService_BuildProfiles tests batch assembly.
func TestProfileService_BuildProfiles(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("A").WithRiskProfile("Low")
		store.SeedFund("B").WithRiskProfile("Medium")
		store.SeedFund("C").WithRiskProfile("High")

		svc := service.NewProfileService(store)
		profiles, err := svc.BuildProfiles(context.Background(), []string{"C", "A", "B"})
		if err != nil {
			t.Fatalf("BuildProfiles() returned unexpected error: %v", err)
		}

		want := []string{"C", "A", "B"}
		for i, name := range want {
			if profiles[i].Name != name {
				t.Errorf("Position %d: expected %q, got %q", i, name, profiles[i].Name)
			}
		}
	})

	t.Run("continues past individual failures", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Good Fund").WithRiskProfile("Low").WithReturn365D("10")
		store.SeedFund("Bad Fund")
		store.FailingFunds["Bad Fund"] = errors.New("index timeout")

		svc := service.NewProfileService(store)
		profiles, err := svc.BuildProfiles(context.Background(), []string{"Good Fund", "Bad Fund"})
		if err != nil {
			t.Fatalf("BuildProfiles() returned unexpected error: %v", err)
		}

		if len(profiles) != 2 {
			t.Fatalf("Expected 2 profiles, got %d", len(profiles))
		}
		if profiles[1].Name != "Bad Fund" {
			t.Errorf("Expected a name-only profile for the failed fund, got %q", profiles[1].Name)
		}
	})

	t.Run("reports no fund data when every fund fails", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.LookupErr = errors.New("index down")

		svc := service.NewProfileService(store)
		_, err := svc.BuildProfiles(context.Background(), []string{"A", "B"})
		if !errors.Is(err, apperrors.ErrNoFundData) {
			t.Errorf("Expected ErrNoFundData, got %v", err)
		}
	})
}

// TestProfileService_FundsByRisk tests risk-filtered listing.
func TestProfileService_FundsByRisk(t *testing.T) {
	t.Run("builds profiles for the filtered universe", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Low A").WithRiskProfile("Low").WithReturn365D("8")
		store.SeedFund("High A").WithRiskProfile("High").WithReturn365D("60")
		store.SeedFund("Low B").WithRiskProfile("Low").WithReturn365D("12")

		svc := service.NewProfileService(store)
		funds, err := svc.FundsByRisk(context.Background(), "Low")
		if err != nil {
			t.Fatalf("FundsByRisk() returned unexpected error: %v", err)
		}

		if len(funds) != 2 {
			t.Fatalf("Expected 2 low-risk funds, got %d", len(funds))
		}
		if funds[0].Name != "Low A" || funds[1].Name != "Low B" {
			t.Errorf("Unexpected funds: %q, %q", funds[0].Name, funds[1].Name)
		}
	})

	t.Run("propagates list failures", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.ListErr = errors.New("index down")

		svc := service.NewProfileService(store)
		if _, err := svc.FundsByRisk(context.Background(), "Low"); err == nil {
			t.Error("Expected an error when the store cannot list funds")
		}
	})
}
