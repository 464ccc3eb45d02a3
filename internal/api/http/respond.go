package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

const (
	codeNotFound         = "NOT_FOUND"
	codeConflict         = "CONFLICT"
	codeCapacityExceeded = "CAPACITY_EXCEEDED"
	codeValidation       = "VALIDATION"
	codeInternal         = "INTERNAL"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps a service error onto the HTTP error envelope. The capacity
// conflict keeps its own code so clients can tell "that part just filled up"
// apart from a generic state conflict.
func writeError(w http.ResponseWriter, err error) {
	var capacityErr *domain.CapacityExceededError
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &capacityErr):
		writeJSON(w, http.StatusConflict, errorEnvelope{Error: errorBody{Code: codeCapacityExceeded, Message: err.Error()}})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorEnvelope{Error: errorBody{Code: codeConflict, Message: err.Error()}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{Error: errorBody{Code: codeNotFound, Message: err.Error()}})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{Code: codeValidation, Message: err.Error()}})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: errorBody{Code: codeInternal, Message: "internal server error"}})
	}
}
