package service

import (
	"math"
	"regexp"
	"strings"
)

// RoundingPrecision is the multiplier used by round to keep two decimal
// places in monetary values and scores.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places. Used throughout the
// service layer so monetary amounts and scores come out consistent in API
// responses.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// clamp limits value to the inclusive [lo, hi] interval.
func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// average computes the mean of the non-nil values, rounded to two decimals.
// Returns 0 when no values are present.
func average(values []*float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round(sum / float64(n))
}

var numberRunPattern = regexp.MustCompile(`[\d,]+`)

var digitRunPattern = regexp.MustCompile(`\d+`)

// defaultInvestmentValue backstops amount strings with no digits at all.
const defaultInvestmentValue = 100000

// ParseInvestmentAmount extracts a numeric investment value from free-form
// amount strings such as "100,000 - 500,000" or "PKR 250,000". The first
// contiguous run of digits and commas wins; strings without one default to
// 100,000.
func ParseInvestmentAmount(amount string) float64 {
	match := numberRunPattern.FindString(amount)
	if match == "" {
		return defaultInvestmentValue
	}
	parsed := ParseMetricValue(match)
	if parsed == nil {
		return defaultInvestmentValue
	}
	return *parsed
}

// defaultHoldingYears backstops holding-period strings with no digits.
const defaultHoldingYears = 5

// ParseHoldingPeriodYears extracts a holding period in whole years from
// strings such as "5 years" or "18 months". Month figures are converted to
// years with a floor of one; strings without a number default to 5 years.
func ParseHoldingPeriodYears(period string) int {
	match := digitRunPattern.FindString(period)
	if match == "" {
		return defaultHoldingYears
	}
	years := 0
	for _, ch := range match {
		years = years*10 + int(ch-'0')
	}
	if strings.Contains(strings.ToLower(period), "month") {
		years = years / 12
		if years < 1 {
			years = 1
		}
	}
	return years
}
