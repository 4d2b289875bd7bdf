package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors onto HTTP statuses. Session expiry is
// 401 so front ends know to route back to sign-in; store outage is 503 so
// they can show a retry message instead of "wrong password".
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrSessionExpired), apperrors.Is(err, apperrors.ErrNoSession):
		writeError(w, http.StatusUnauthorized, "session expired")
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case apperrors.Is(err, apperrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "record store unavailable")
	case apperrors.Is(err, apperrors.ErrNotFound), apperrors.Is(err, apperrors.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case apperrors.Is(err, apperrors.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
