package service_test

import (
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/service"
)

// TestParseMetricValue tests raw metric normalization.
//
// WHY: Every algorithm in the engine consumes metrics through this parser.
// Financial feeds use "-" for N/A, thousands separators, and trailing
// percent signs; getting any of these wrong silently skews every score
// downstream.
func TestParseMetricValue(t *testing.T) {
	t.Run("dash marker means missing", func(t *testing.T) {
		if got := service.ParseMetricValue("-"); got != nil {
			t.Errorf("Expected nil for %q, got %v", "-", *got)
		}
	})

	t.Run("empty string means missing", func(t *testing.T) {
		if got := service.ParseMetricValue(""); got != nil {
			t.Errorf("Expected nil for empty string, got %v", *got)
		}
	})

	t.Run("strips thousands separators", func(t *testing.T) {
		got := service.ParseMetricValue("8,950,000,000")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 8950000000 {
			t.Errorf("Expected 8950000000, got %v", *got)
		}
	})

	t.Run("strips trailing percent sign", func(t *testing.T) {
		got := service.ParseMetricValue("12.5%")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 12.5 {
			t.Errorf("Expected 12.5, got %v", *got)
		}
	})

	t.Run("non-numeric text means missing", func(t *testing.T) {
		if got := service.ParseMetricValue("abc"); got != nil {
			t.Errorf("Expected nil for %q, got %v", "abc", *got)
		}
	})

	t.Run("plain number parses", func(t *testing.T) {
		got := service.ParseMetricValue("42.75")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 42.75 {
			t.Errorf("Expected 42.75, got %v", *got)
		}
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		got := service.ParseMetricValue("  7.1% ")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 7.1 {
			t.Errorf("Expected 7.1, got %v", *got)
		}
	})
}

// TestParseInvestmentAmount tests free-form amount parsing.
//
// WHY: Investment amounts arrive as form ranges like "100,000 - 500,000"
// or currency-prefixed strings. The allocator's monetary math reads
// whatever this returns, so the first-digit-run rule and the 100,000
// default must hold.
func TestParseInvestmentAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   float64
	}{
		{"range takes the first run", "100,000 - 500,000", 100000},
		{"currency prefix ignored", "PKR 250,000", 250000},
		{"plain number", "75000", 75000},
		{"no digits defaults", "a lot of money", 100000},
		{"empty defaults", "", 100000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.ParseInvestmentAmount(tc.amount); got != tc.want {
				t.Errorf("ParseInvestmentAmount(%q) = %v, want %v", tc.amount, got, tc.want)
			}
		})
	}
}

// TestParseHoldingPeriodYears tests holding-period parsing.
//
// WHY: Fee projections multiply annual cost by this figure. Month inputs
// must floor at one year, not zero, or the fee optimizer reports funds as
// free.
func TestParseHoldingPeriodYears(t *testing.T) {
	cases := []struct {
		name   string
		period string
		want   int
	}{
		{"years pass through", "5 years", 5},
		{"months convert to years", "24 months", 2},
		{"short month spans floor at one", "6 months", 1},
		{"no digits default to five", "long term", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.ParseHoldingPeriodYears(tc.period); got != tc.want {
				t.Errorf("ParseHoldingPeriodYears(%q) = %d, want %d", tc.period, got, tc.want)
			}
		})
	}
}
