package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/voyageplanner/backend/internal/domain"
)

// errorDetail is the machine-readable error payload returned to clients.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps errorDetail in the envelope all error bodies share.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps a service error onto an HTTP response. Domain sentinels
// become client errors; anything else is reported generically without leaking
// internal detail, and logged for operators.
func respondError(w http.ResponseWriter, r *http.Request, notFoundMsg string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: notFoundMsg},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed body, failed field validation, malformed path parameter).
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: destination must be at
// least 4 characters" → "destination must be at least 4 characters".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// urlParamUUID parses a UUID path parameter, writing a 422 response on failure.
// The second return value reports whether parsing succeeded.
func urlParamUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondBadRequest(w, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeValid decodes a JSON body into dst and runs struct validation on it,
// writing a 422 response on failure. The return value reports success.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondBadRequest(w, "invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		respondBadRequest(w, validationMessage(err))
		return false
	}
	return true
}

// validationMessage turns the first validator field error into a short,
// client-friendly message.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return strings.ToLower(fe.Field()) + " is required"
		case "email":
			return strings.ToLower(fe.Field()) + " must be a valid email address"
		case "min":
			return strings.ToLower(fe.Field()) + " must be at least " + fe.Param() + " characters"
		default:
			return strings.ToLower(fe.Field()) + " is invalid"
		}
	}
	return "invalid request body"
}
