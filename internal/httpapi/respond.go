package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"facegate/internal/facegate/embedder"
	"facegate/internal/facegate/service"
	"facegate/internal/facegate/store"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}

// serviceError maps service-layer sentinels onto HTTP responses.  Client
// mistakes get 4xx; infrastructure failures are logged and surfaced as a
// coded 5xx without internal detail.
func (s *Server) serviceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmployeeID):
		writeError(w, http.StatusBadRequest, "invalid_employee_id", err.Error())
	case errors.Is(err, service.ErrMissingRequiredField):
		writeError(w, http.StatusBadRequest, "missing_required_field", err.Error())
	case errors.Is(err, service.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, "employee_not_found", err.Error())
	case errors.Is(err, store.ErrShiftAlreadyOpen):
		writeError(w, http.StatusConflict, "shift_already_open", err.Error())
	case errors.Is(err, service.ErrNoOpenShift):
		writeError(w, http.StatusNotFound, "no_open_shift", err.Error())
	case errors.Is(err, embedder.ErrModelUnavailable):
		writeError(w, http.StatusServiceUnavailable, "model_unavailable", "embedding backend unavailable")
	case errors.Is(err, service.ErrDatabaseUnavailable):
		s.logger.Printf("%s error: %v", op, err)
		writeError(w, http.StatusInternalServerError, "database_error", "database error")
	case errors.Is(err, service.ErrFaceProcessing), errors.Is(err, embedder.ErrInferenceFailed):
		s.logger.Printf("%s error: %v", op, err)
		writeError(w, http.StatusInternalServerError, "face_processing_error", "face processing error")
	default:
		s.logger.Printf("%s error: %v", op, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
	}
}
