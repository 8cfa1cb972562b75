package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sweetbox/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already written; an encode failure is a dropped client.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps err to a status code. Domain errors keep their code
// and message; anything else is reported as an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, code, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("handler error")
	} else {
		logger.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func statusFor(err error) (int, string, string) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error"
	}

	switch domainErr.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeUnknownAction:
		return http.StatusNotFound, domainErr.Code, domainErr.Message
	case model.ErrCodeMissingField, model.ErrCodeInvalidQuantityDelta, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest, domainErr.Code, domainErr.Message
	case model.ErrCodeStorageUnavailable:
		return http.StatusServiceUnavailable, domainErr.Code, domainErr.Message
	default:
		return http.StatusInternalServerError, domainErr.Code, domainErr.Message
	}
}

// wantsJSON reports whether the client asked for a JSON answer instead of a
// page.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
