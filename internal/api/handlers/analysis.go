package handlers

import (
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/validation"
)

// AnalysisHandler handles HTTP requests for correlation, consistency, and
// performance endpoints.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler with the provided service dependency.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Correlation handles POST requests for pairwise correlation analysis.
//
// Endpoint: POST /api/analysis/correlation
// Response: 200 OK with CorrelationResult
// Error: 400 Bad Request for fewer than two funds
func (h *AnalysisHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	var req request.CorrelationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateFundNames(req.FundNames); err != nil {
		respondServiceError(w, "Invalid fund list", err)
		return
	}

	result, err := h.analysisService.AnalyzeCorrelations(r.Context(), req.FundNames)
	if err != nil {
		respondServiceError(w, "Failed to analyze correlations", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Consistency handles POST requests for consistency scoring.
//
// Endpoint: POST /api/analysis/consistency
// Response: 200 OK with ConsistencyResult
func (h *AnalysisHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	var req request.ConsistencyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateFundNames(req.FundNames); err != nil {
		respondServiceError(w, "Invalid fund list", err)
		return
	}

	result, err := h.analysisService.AnalyzeConsistency(r.Context(), req.FundNames)
	if err != nil {
		respondServiceError(w, "Failed to analyze consistency", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Performance handles POST requests for return series over the standard
// periods.
//
// Endpoint: POST /api/analysis/performance
// Response: 200 OK with PerformanceResult
func (h *AnalysisHandler) Performance(w http.ResponseWriter, r *http.Request) {
	var req request.PerformanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateFundNames(req.FundNames); err != nil {
		respondServiceError(w, "Invalid fund list", err)
		return
	}

	result, err := h.analysisService.AnalyzePerformance(r.Context(), req.FundNames, req.AnalysisType)
	if err != nil {
		respondServiceError(w, "Failed to analyze performance", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
