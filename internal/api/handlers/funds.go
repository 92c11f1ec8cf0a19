package handlers

import (
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/validation"
)

// FundHandler handles HTTP requests for fund profile endpoints. It parses
// requests and delegates to the profile and analysis services.
type FundHandler struct {
	profileService  *service.ProfileService
	analysisService *service.AnalysisService
}

// NewFundHandler creates a new FundHandler with the provided service dependencies.
func NewFundHandler(profileService *service.ProfileService, analysisService *service.AnalysisService) *FundHandler {
	return &FundHandler{
		profileService:  profileService,
		analysisService: analysisService,
	}
}

// Funds handles GET requests to list the fund universe, optionally
// filtered by risk profile.
//
// Endpoint: GET /api/fund?riskProfile=High
// Response: 200 OK with array of fund names
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	riskProfile := r.URL.Query().Get("riskProfile")

	names, err := h.profileService.Store().ListFunds(r.Context(), riskProfile)
	if err != nil {
		respondServiceError(w, "Failed to retrieve funds", err)
		return
	}

	respondJSON(w, http.StatusOK, names)
}

// Profile handles GET requests for one fund's full profile. The requested
// name is fuzzy-resolved against the universe.
//
// Endpoint: GET /api/fund/profile?name=JBS+Alpha+Fund
// Response: 200 OK with the FundProfile
func (h *FundHandler) Profile(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondServiceError(w, "Fund name is required", validation.ErrEmptyFundName)
		return
	}

	known, err := h.profileService.AllFundNames(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to retrieve fund universe", err)
		return
	}
	matched := service.ResolveFundName(name, known)

	profile, err := h.profileService.BuildProfile(r.Context(), matched)
	if err != nil {
		respondServiceError(w, "Failed to build fund profile", err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Compare handles POST requests for a side-by-side metric comparison.
//
// Endpoint: POST /api/fund/compare
// Response: 200 OK with array of MetricComparison
func (h *FundHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req request.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateFundNames(req.FundNames); err != nil {
		respondServiceError(w, "Invalid fund list", err)
		return
	}

	comparison, err := h.analysisService.CompareFunds(r.Context(), req.FundNames, req.Metric)
	if err != nil {
		respondServiceError(w, "Failed to compare funds", err)
		return
	}

	respondJSON(w, http.StatusOK, comparison)
}
