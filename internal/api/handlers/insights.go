package handlers

import (
	"net/http"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/validation"
)

// InsightHandler handles HTTP requests for market insights, opportunity
// scans, personalized alerts, and insight snapshots.
type InsightHandler struct {
	insightService  *service.InsightService
	snapshotService *service.SnapshotService
}

// NewInsightHandler creates a new InsightHandler with the provided service dependencies.
func NewInsightHandler(insightService *service.InsightService, snapshotService *service.SnapshotService) *InsightHandler {
	return &InsightHandler{
		insightService:  insightService,
		snapshotService: snapshotService,
	}
}

// Market handles GET requests for the live market digest.
//
// Endpoint: GET /api/insights/market
// Response: 200 OK with MarketInsights
func (h *InsightHandler) Market(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insightService.MarketInsights(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to generate market insights", err)
		return
	}

	respondJSON(w, http.StatusOK, insights)
}

// Opportunities handles GET requests for the opportunity scanner.
//
// Endpoint: GET /api/insights/opportunities?riskProfile=Medium
// Response: 200 OK with OpportunityScan
func (h *InsightHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("riskProfile")
	if raw == "" {
		raw = "Medium"
	}
	riskProfile, err := validation.ValidateRiskProfile(raw)
	if err != nil {
		respondServiceError(w, "Invalid risk profile", err)
		return
	}

	scan, err := h.insightService.ScanOpportunities(r.Context(), riskProfile)
	if err != nil {
		respondServiceError(w, "Failed to scan opportunities", err)
		return
	}

	respondJSON(w, http.StatusOK, scan)
}

// Alerts handles POST requests for the personalized alert digest.
//
// Endpoint: POST /api/insights/alerts
// Response: 200 OK with SmartAlertsResult
func (h *InsightHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	var req request.SmartAlertsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RiskProfile == "" {
		req.RiskProfile = "Medium"
	}
	riskProfile, err := validation.ValidateRiskProfile(req.RiskProfile)
	if err != nil {
		respondServiceError(w, "Invalid risk profile", err)
		return
	}

	result, err := h.insightService.SmartAlerts(r.Context(), riskProfile, req.InvestmentAmount, req.TimeHorizon)
	if err != nil {
		respondServiceError(w, "Failed to generate alerts", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// LatestSnapshot handles GET requests for the most recent persisted
// insight snapshot.
//
// Endpoint: GET /api/insights/snapshot
// Response: 200 OK with InsightSnapshot
// Error: 404 Not Found before the first refresh
func (h *InsightHandler) LatestSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.Latest()
	if err != nil {
		respondServiceError(w, "Failed to retrieve insight snapshot", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// RefreshSnapshot handles POST requests forcing a snapshot refresh outside
// the scheduled cadence.
//
// Endpoint: POST /api/insights/snapshot/refresh
// Response: 200 OK with the new InsightSnapshot
func (h *InsightHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.Refresh(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to refresh insight snapshot", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
