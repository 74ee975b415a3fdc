package middleware

import (
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/eczemahub/pkg/identity"
)

// TokenAuthenticator is middleware that validates caller tokens
type TokenAuthenticator struct {
	Key []byte
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(key []byte) *TokenAuthenticator {
	return &TokenAuthenticator{Key: key}
}

// Middleware returns an HTTP middleware that validates bearer tokens
// and stores the caller Identity in the request context.
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		id, err := identity.Parse(t.Key, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid authorization token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
