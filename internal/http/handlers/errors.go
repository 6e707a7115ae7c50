package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Machine-readable error codes; clients switch on these, the messages are
// for humans.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeMissingToken        = "MISSING_TOKEN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeNotFound            = "NOT_FOUND"
	CodeDuplicateUsername   = "DUPLICATE_USERNAME"
	CodeConstraintViolation = "DATABASE_CONSTRAINT_ERROR"
	CodeTooManyAttempts     = "TOO_MANY_ATTEMPTS"
	CodeInternalError       = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeRouteNotFound       = "ROUTE_NOT_FOUND"
)

// ErrorResponse is the envelope every failed request carries. Details is
// populated only outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

var productionMode bool

// SetProductionMode suppresses error details in responses when enabled.
func SetProductionMode(enabled bool) {
	productionMode = enabled
}

// WriteError sends the structured JSON error envelope.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeErrorDetails(w, status, code, message, "")
}

func writeErrorDetails(w http.ResponseWriter, status int, code, message, details string) {
	resp := ErrorResponse{Error: code, Message: message}
	if !productionMode {
		resp.Details = details
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON error response: %v", err)
	}
}

// WriteInternalError maps an unexpected failure to 500, logging the cause
// and exposing it only outside production.
func WriteInternalError(w http.ResponseWriter, cause any) {
	log.Printf("internal error: %v", cause)
	writeErrorDetails(w, http.StatusInternalServerError, CodeInternalError,
		"something went wrong", fmt.Sprintf("%v", cause))
}

// RouteNotFoundHandler answers unmatched routes with the JSON envelope
// instead of chi's default plain text.
func RouteNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, CodeRouteNotFound,
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
}
