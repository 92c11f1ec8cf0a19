package service_test

import (
	"context"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/testutil"
)

func strPtr(s string) *string {
	return &s
}

// TestScreeningService_Screen tests criteria filtering and scoring.
//
// WHY: Screening criteria are independent AND filters with
// rejection-friendly defaults for missing metrics. The min_return=30 /
// max_fee=1.5 scenario pins that every fund outside the bars is excluded
// and every fund inside is kept regardless of rank.
func TestScreeningService_Screen(t *testing.T) {
	t.Run("min return and max fee filter independently", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Keeper A").WithRiskProfile("High").WithReturn365D("45").WithExpenseRatio("1.0")
		store.SeedFund("Low Return").WithRiskProfile("High").WithReturn365D("20").WithExpenseRatio("1.0")
		store.SeedFund("Expensive").WithRiskProfile("High").WithReturn365D("50").WithExpenseRatio("2.0")
		store.SeedFund("Keeper B").WithRiskProfile("Low").WithReturn365D("31").WithExpenseRatio("1.5")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{
			MinReturn: floatPtr(30),
			MaxFee:    floatPtr(1.5),
		})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		if result.TotalFundsScreened != 4 {
			t.Errorf("Expected 4 funds screened, got %d", result.TotalFundsScreened)
		}
		if result.FundsMatching != 2 {
			t.Fatalf("Expected 2 survivors, got %d", result.FundsMatching)
		}

		for _, fund := range result.ScreenedFunds {
			if fund.Name == "Low Return" || fund.Name == "Expensive" {
				t.Errorf("Fund %q should have been filtered out", fund.Name)
			}
		}
	})

	t.Run("missing metrics fail the bars they guard", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("No Return Fund").WithRiskProfile("Medium").WithExpenseRatio("1.0")
		store.SeedFund("No Fee Fund").WithRiskProfile("Medium").WithReturn365D("40")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{
			MinReturn: floatPtr(10),
			MaxFee:    floatPtr(2),
		})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		// A missing return reads as 0 (< 10); a missing fee reads as the
		// 999 sentinel (> 2). Both funds fail.
		if result.FundsMatching != 0 {
			t.Errorf("Expected no survivors, got %d", result.FundsMatching)
		}
	})

	t.Run("risk profile criterion matches exactly", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Low Fund").WithRiskProfile("Low").WithReturn365D("10").WithExpenseRatio("1")
		store.SeedFund("High Fund").WithRiskProfile("High").WithReturn365D("60").WithExpenseRatio("1")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{
			RiskProfile: strPtr("low"),
		})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		if result.FundsMatching != 1 {
			t.Fatalf("Expected 1 survivor, got %d", result.FundsMatching)
		}
		if result.ScreenedFunds[0].Name != "Low Fund" {
			t.Errorf("Expected Low Fund, got %q", result.ScreenedFunds[0].Name)
		}
	})

	t.Run("unrecognized risk criterion matches nothing", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Tagged Fund").WithRiskProfile("Low").WithReturn365D("10").WithExpenseRatio("1")
		store.SeedFund("Untagged Fund").WithReturn365D("40").WithExpenseRatio("1")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{
			RiskProfile: strPtr("Extreme"),
		})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		// "Extreme" is not a known category; it must not fall through to
		// funds without a risk tag.
		if result.FundsMatching != 0 {
			t.Errorf("Expected no survivors, got %d", result.FundsMatching)
		}
	})

	t.Run("survivors sort by screening score descending", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Weak").WithRiskProfile("Medium").WithReturn365D("10").WithExpenseRatio("3")
		store.SeedFund("Strong").WithRiskProfile("Medium").WithReturn365D("50").WithExpenseRatio("0.5")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		if result.ScreenedFunds[0].Name != "Strong" {
			t.Errorf("Expected Strong first, got %q", result.ScreenedFunds[0].Name)
		}
		// 50*0.4 + (5-0.5)*10 = 65
		if result.ScreenedFunds[0].Score != 65 {
			t.Errorf("Expected score 65, got %v", result.ScreenedFunds[0].Score)
		}
	})

	t.Run("summary counts risk distribution over all survivors", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("A").WithRiskProfile("Low").WithReturn365D("10").WithExpenseRatio("1")
		store.SeedFund("B").WithRiskProfile("Low").WithReturn365D("20").WithExpenseRatio("1")
		store.SeedFund("C").WithRiskProfile("High").WithReturn365D("60").WithExpenseRatio("2")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.Screen(context.Background(), model.ScreeningCriteria{})
		if err != nil {
			t.Fatalf("Screen() returned unexpected error: %v", err)
		}

		if got := result.Summary.RiskDistribution[model.RiskLow]; got != 2 {
			t.Errorf("Expected 2 Low funds, got %d", got)
		}
		if got := result.Summary.RiskDistribution[model.RiskHigh]; got != 1 {
			t.Errorf("Expected 1 High fund, got %d", got)
		}
		if result.Summary.AvgReturn365D != 30 {
			t.Errorf("Expected average return 30, got %v", result.Summary.AvgReturn365D)
		}
	})
}

// TestScreeningService_AnalyzeFees tests holding-cost projection.
//
// WHY: The fee optimizer drives switching advice. The annual-fee formula,
// the zero cost for unknown ratios, and the lowest/highest orderings all
// feed user-visible savings figures.
func TestScreeningService_AnalyzeFees(t *testing.T) {
	t.Run("projects fees over the holding period", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Cheap Fund").WithRiskProfile("Low").WithExpenseRatio("0.5")
		store.SeedFund("Pricey Fund").WithRiskProfile("High").WithExpenseRatio("2.0")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.AnalyzeFees(context.Background(), "100,000", "5 years")
		if err != nil {
			t.Fatalf("AnalyzeFees() returned unexpected error: %v", err)
		}

		if result.Years != 5 {
			t.Errorf("Expected 5 years, got %d", result.Years)
		}
		if len(result.LowestFeeFunds) == 0 {
			t.Fatal("Expected lowest-fee funds")
		}

		cheapest := result.LowestFeeFunds[0]
		if cheapest.FundName != "Cheap Fund" {
			t.Errorf("Expected Cheap Fund first, got %q", cheapest.FundName)
		}
		// 100000 * 0.5% = 500 annual, 2500 over 5 years
		if cheapest.AnnualFee != 500 {
			t.Errorf("Expected annual fee 500, got %v", cheapest.AnnualFee)
		}
		if cheapest.TotalFees != 2500 {
			t.Errorf("Expected total fees 2500, got %v", cheapest.TotalFees)
		}

		// 2.0% on 100000 over 5 years = 10000; savings 7500.
		if result.Savings.PotentialSavings != 7500 {
			t.Errorf("Expected savings 7500, got %v", result.Savings.PotentialSavings)
		}
	})

	t.Run("missing expense ratio costs zero", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Opaque Fund").WithRiskProfile("Medium").WithReturn365D("10")

		svc := service.NewScreeningService(service.NewProfileService(store))
		result, err := svc.AnalyzeFees(context.Background(), "100,000", "3 years")
		if err != nil {
			t.Fatalf("AnalyzeFees() returned unexpected error: %v", err)
		}

		fund := result.LowestFeeFunds[0]
		if fund.TotalFees != 0 {
			t.Errorf("Expected zero fees for a missing ratio, got %v", fund.TotalFees)
		}
		if fund.FeeCategory != "Unknown" {
			t.Errorf("Expected Unknown fee category, got %q", fund.FeeCategory)
		}
	})
}
