package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/api/middleware"
)

// TestLogger tests the request logging middleware.
//
// WHY: The middleware wraps the ResponseWriter to capture the status code;
// it must pass the inner handler's response through unmodified.
func TestLogger(t *testing.T) {
	t.Run("passes the inner response through", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		})

		w := httptest.NewRecorder()
		middleware.Logger(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/fund", nil))

		if w.Code != http.StatusTeapot {
			t.Errorf("Expected 418, got %d", w.Code)
		}
		if w.Body.String() != "short and stout" {
			t.Errorf("Unexpected body: %q", w.Body.String())
		}
	})

	t.Run("defaults to 200 when the handler never writes a header", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		w := httptest.NewRecorder()
		middleware.Logger(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})
}
