package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/response"
	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// respondServiceError maps a service error onto an HTTP status: invalid
// input becomes 400, missing resources 404, an unreachable metric store
// 503, and anything else 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrTooFewFunds),
		errors.Is(err, apperrors.ErrUnknownRiskProfile),
		errors.Is(err, apperrors.ErrInvalidLeadAction),
		errors.Is(err, apperrors.ErrMissingRequiredField),
		errors.Is(err, validation.ErrInvalidUUID),
		errors.Is(err, validation.ErrInvalidRiskProfile),
		errors.Is(err, validation.ErrEmptySlice),
		errors.Is(err, validation.ErrEmptyFundName):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrLeadNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrStoreUnavailable),
		errors.Is(err, apperrors.ErrNoFundData):
		status = http.StatusServiceUnavailable
	}

	response.RespondError(w, status, message, err.Error())
}

// decodeJSON parses a request body into dst, responding with 400 on
// malformed input. Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}
