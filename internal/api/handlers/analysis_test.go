package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/api/handlers"
	"github.com/hkpamc/fund-advisor-backend/internal/api/request"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/testutil"
)

func newAnalysisHandler(store *testutil.FakeMetricStore) *handlers.AnalysisHandler {
	return handlers.NewAnalysisHandler(service.NewAnalysisService(service.NewProfileService(store)))
}

// TestAnalysisHandler_Correlation tests the correlation endpoint.
//
// WHY: Invalid input must map to 400 before the service is exercised, and
// a valid request must deliver the full pairwise result as JSON.
func TestAnalysisHandler_Correlation(t *testing.T) {
	t.Run("returns the pairwise analysis", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("A").WithRiskProfile("Low").WithReturn365D("10")
		store.SeedFund("B").WithRiskProfile("High").WithReturn365D("60")
		handler := newAnalysisHandler(store)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis/correlation",
			request.CorrelationRequest{FundNames: []string{"A", "B"}})
		w := httptest.NewRecorder()
		handler.Correlation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.CorrelationResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(result.Pairs) != 2 {
			t.Errorf("Expected 2 ordered pairs, got %d", len(result.Pairs))
		}
	})

	t.Run("rejects a single fund with 400", func(t *testing.T) {
		handler := newAnalysisHandler(testutil.NewFakeMetricStore())

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis/correlation",
			request.CorrelationRequest{FundNames: []string{"Lonely Fund"}})
		w := httptest.NewRecorder()
		handler.Correlation(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects an empty fund list with 400", func(t *testing.T) {
		handler := newAnalysisHandler(testutil.NewFakeMetricStore())

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis/correlation",
			request.CorrelationRequest{})
		w := httptest.NewRecorder()
		handler.Correlation(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects a malformed body with 400", func(t *testing.T) {
		handler := newAnalysisHandler(testutil.NewFakeMetricStore())

		req := httptest.NewRequest(http.MethodPost, "/api/analysis/correlation",
			strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		handler.Correlation(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

// TestAnalysisHandler_Performance tests the performance endpoint.
func TestAnalysisHandler_Performance(t *testing.T) {
	t.Run("returns aligned return series", func(t *testing.T) {
		store := testutil.NewFakeMetricStore()
		store.SeedFund("Alpha Fund").WithRiskProfile("Medium").WithMetric("365D", "28")
		handler := newAnalysisHandler(store)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/analysis/performance",
			request.PerformanceRequest{FundNames: []string{"Alpha Fund"}, AnalysisType: "trend"})
		w := httptest.NewRecorder()
		handler.Performance(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.PerformanceResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(result.Series) != 1 || result.Series[0].Returns["365D"] != 28 {
			t.Errorf("Unexpected series: %+v", result.Series)
		}
	})
}
