package service

import (
	"strconv"
	"strings"
)

// ParseMetricValue converts a raw metric string from the store into a
// numeric value. Financial feeds mark missing data with "-" and format
// numbers with thousands separators and trailing percent signs, so all of
// those are handled here.
//
// Returns nil for empty strings, the "-" marker, and anything that does not
// parse as a number. A nil result means "missing", never zero; algorithm
// defaults are substituted by the caller, not here.
func ParseMetricValue(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return nil
	}

	cleaned := strings.ReplaceAll(trimmed, ",", "")
	cleaned = strings.TrimSuffix(cleaned, "%")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

// valueOr unwraps an optional metric value, substituting the algorithm's
// documented default when the value is missing.
func valueOr(value *float64, def float64) float64 {
	if value == nil {
		return def
	}
	return *value
}

// floatPtr returns a pointer to v. Convenience for optional fields.
func floatPtr(v float64) *float64 {
	return &v
}
