package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/eczemahub/pkg/identity"
	"github.com/doodlesbykumbi/eczemahub/pkg/server"
	"github.com/doodlesbykumbi/eczemahub/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	Login    string `json:"login"`
	IsAdmin  bool   `json:"is_admin"`
	TokenIAT int64  `json:"token_iat,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	tokenMiddleware := middleware.NewTokenAuthenticator(s.TokenKey)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(tokenMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s)).Methods("GET")
}

func handleWhoami(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		admin, _ := s.Resources.Admin()

		response := WhoamiResponse{
			Login:   id.Login,
			IsAdmin: admin != "" && admin == id.Login,
		}
		if !id.IssuedAt.IsZero() {
			response.TokenIAT = id.IssuedAt.Unix()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
