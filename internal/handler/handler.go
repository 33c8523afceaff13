package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tokoonline/internal/model"

	"github.com/rs/zerolog"
)

// messageResponse is the success envelope for mutations without a payload.
type messageResponse struct {
	Message string `json:"message"`
}

// dataResponse is the success envelope carrying a payload.
type dataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP response. Domain errors
// carry their own code; anything else is an internal fault.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError,
		"An unexpected server error occurred", logger)
}

// statusForCode maps a domain error code to an HTTP status. Conflicts map to
// 400, as this API has always reported duplicate emails.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeConflict:
		return http.StatusBadRequest
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the named path segment as an integer id.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
