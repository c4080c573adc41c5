package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	publicdomain "github.com/sngm3741/menu-studio/api/internal/public/domain"
)

// Envelope is the body of every API response.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("encode response failed", zap.Error(err))
	}
}

// WriteData writes {ok:true, data}.
func WriteData(logger *zap.Logger, w http.ResponseWriter, status int, data any) {
	WriteJSON(logger, w, status, Envelope{OK: true, Data: data})
}

// WriteError writes {ok:false, error}.
func WriteError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, Envelope{OK: false, Error: message})
}

// StatusOf maps a service error to an HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, admindomain.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, admindomain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, admindomain.ErrNotFound), errors.Is(err, publicdomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, admindomain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError maps err to a status. Server errors are logged and
// their detail is not sent to the client.
func WriteServiceError(logger *zap.Logger, w http.ResponseWriter, msg string, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.Error(msg, zap.Error(err))
		}
		WriteError(logger, w, status, msg)
		return
	}
	WriteError(logger, w, status, err.Error())
}
