// Package response provides helpers for sending consistent JSON responses
// and structured errors.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the structured error body returned by the API. Details
// is optional extra context.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code. A nil data
// value writes only the status code. Encoding errors are logged, not fatal.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status
// code and a user-facing message.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
