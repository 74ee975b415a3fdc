package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/eczemahub/pkg/identity"
	"github.com/doodlesbykumbi/eczemahub/pkg/store"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps the store error taxonomy onto HTTP
// statuses: validation 400, not found 404, unauthorized caller 403,
// already exists 409.
func respondWithStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		respondWithError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, store.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "Caller is not the admin")
	case errors.Is(err, store.ErrAlreadyExists):
		respondWithError(w, http.StatusConflict, "Resource already exists")
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// clientIP extracts the client address for audit events.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}

// callerLogin returns the authenticated caller login, or "" on routes
// without the token middleware.
func callerLogin(r *http.Request) string {
	if id, ok := identity.Get(r.Context()); ok {
		return id.Login
	}
	return ""
}
