package handlers

import (
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
)

// ScreeningHandler handles HTTP requests for screening and fee-analysis
// endpoints.
type ScreeningHandler struct {
	screeningService *service.ScreeningService
}

// NewScreeningHandler creates a new ScreeningHandler with the provided service dependency.
func NewScreeningHandler(screeningService *service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{
		screeningService: screeningService,
	}
}

// Screen handles POST requests filtering the universe on optional
// criteria.
//
// Endpoint: POST /api/screening
// Response: 200 OK with ScreeningResult
func (h *ScreeningHandler) Screen(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	criteria := model.ScreeningCriteria{
		MinReturn:   req.MinReturn,
		MaxFee:      req.MaxFee,
		RiskProfile: req.RiskProfile,
	}

	result, err := h.screeningService.Screen(r.Context(), criteria)
	if err != nil {
		respondServiceError(w, "Failed to screen funds", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Fees handles POST requests projecting fee impact across the universe.
//
// Endpoint: POST /api/screening/fees
// Response: 200 OK with FeeAnalysisResult
func (h *ScreeningHandler) Fees(w http.ResponseWriter, r *http.Request) {
	var req request.FeeAnalysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.screeningService.AnalyzeFees(r.Context(), req.InvestmentAmount, req.HoldingPeriod)
	if err != nil {
		respondServiceError(w, "Failed to analyze fees", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
