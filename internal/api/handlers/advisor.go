package handlers

import (
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
)

// AdvisorHandler handles HTTP requests for recommendation and portfolio
// endpoints.
type AdvisorHandler struct {
	scoringService   *service.ScoringService
	portfolioService *service.PortfolioService
}

// NewAdvisorHandler creates a new AdvisorHandler with the provided service dependencies.
func NewAdvisorHandler(scoringService *service.ScoringService, portfolioService *service.PortfolioService) *AdvisorHandler {
	return &AdvisorHandler{
		scoringService:   scoringService,
		portfolioService: portfolioService,
	}
}

// Quiz handles GET requests for the risk assessment questionnaire.
//
// Endpoint: GET /api/advisor/quiz
// Response: 200 OK with the RiskQuiz schema
func (h *AdvisorHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.scoringService.Quiz())
}

// Recommend handles POST requests for ranked fund recommendations.
//
// Endpoint: POST /api/advisor/recommend
// Response: 200 OK with RecommendationResult
func (h *AdvisorHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req request.RecommendRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.scoringService.Recommend(r.Context(), req.RiskProfile, req.InvestmentAmount, req.TimeHorizon, req.Priority)
	if err != nil {
		respondServiceError(w, "Failed to build recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Portfolio handles POST requests for a cross-risk-category allocation.
//
// Endpoint: POST /api/advisor/portfolio
// Response: 200 OK with Portfolio
func (h *AdvisorHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	var req request.PortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	portfolio, err := h.portfolioService.BuildPortfolio(r.Context(), req.RiskProfile, req.InvestmentAmount, req.DiversificationLevel)
	if err != nil {
		respondServiceError(w, "Failed to build portfolio", err)
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}
