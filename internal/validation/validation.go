package validation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// Common validation errors
var (
	ErrInvalidUUID        = fmt.Errorf("invalid UUID format")
	ErrInvalidRiskProfile = fmt.Errorf("invalid risk profile")
	ErrEmptySlice         = fmt.Errorf("slice cannot be empty")
	ErrEmptyFundName      = fmt.Errorf("fund name cannot be empty")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateRiskProfile checks that a raw risk label maps to a known
// category. Case-insensitive.
func ValidateRiskProfile(raw string) (model.RiskProfile, error) {
	risk := model.ParseRiskProfile(raw)
	switch risk {
	case model.RiskLow, model.RiskMedium, model.RiskHigh:
		return risk, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidRiskProfile, raw)
}

// ValidateFundNames checks a fund-name list for emptiness and blank
// entries.
func ValidateFundNames(names []string) error {
	if len(names) == 0 {
		return ErrEmptySlice
	}
	for _, name := range names {
		if name == "" {
			return ErrEmptyFundName
		}
	}
	return nil
}
