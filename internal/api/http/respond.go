package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/validation"
)

// envelope is the JSON shape every API endpoint responds with.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: message}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// respondServiceError maps domain and validation errors onto HTTP statuses.
// Anything unrecognized is logged and hidden behind a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondError(w, http.StatusBadRequest, fieldErrs.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrRejectReasonRequired),
		errors.Is(err, domain.ErrWhatsappConstraint),
		errors.Is(err, domain.ErrWhatDoYouDoTooShort),
		errors.Is(err, domain.ErrHopingToGetTooShort),
		errors.Is(err, domain.ErrHopeToBringTooShort),
		errors.Is(err, domain.ErrFieldRequirements):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// decodeOptionalBody is decodeBody for endpoints where an empty body is a
// valid request.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
