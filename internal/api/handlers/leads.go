package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/validation"
)

// LeadHandler handles HTTP requests for consultation-lead endpoints.
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new LeadHandler with the provided service dependency.
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// Form handles GET requests for the consultation form schema.
//
// Endpoint: GET /api/lead/form
// Response: 200 OK with the LeadForm schema
func (h *LeadHandler) Form(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.leadService.Form())
}

// Respond handles POST requests carrying a consultation-form action.
//
// Endpoint: POST /api/lead/response
// Response: 200 OK with a LeadResponse
// Error: 400 Bad Request for an unknown action or missing required fields
func (h *LeadHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req request.LeadResponseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead := model.Lead{
		Name:              req.FormData.Name,
		Email:             req.FormData.Email,
		Phone:             req.FormData.Phone,
		InvestmentAmount:  req.FormData.InvestmentAmount,
		RiskPreference:    req.FormData.RiskPreference,
		InvestmentHorizon: req.FormData.InvestmentHorizon,
	}

	result, err := h.leadService.HandleResponse(req.Action, lead)
	if err != nil {
		respondServiceError(w, "Failed to process lead response", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Leads handles GET requests listing all captured leads, newest first.
//
// Endpoint: GET /api/lead
// Response: 200 OK with array of Lead
func (h *LeadHandler) Leads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.List()
	if err != nil {
		respondServiceError(w, "Failed to retrieve leads", err)
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

// Lead handles GET requests for one lead by ID.
//
// Endpoint: GET /api/lead/{leadID}
// Response: 200 OK with the Lead
// Error: 404 Not Found when no such lead exists
func (h *LeadHandler) Lead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")
	if err := validation.ValidateUUID(leadID); err != nil {
		respondServiceError(w, "Invalid lead ID", err)
		return
	}

	lead, err := h.leadService.Get(leadID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve lead", err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}
