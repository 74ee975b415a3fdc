package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/doodlesbykumbi/eczemahub/pkg/audit"
	"github.com/doodlesbykumbi/eczemahub/pkg/server"
)

// AdminPayload is the request body for PUT /admin.
type AdminPayload struct {
	Login string `json:"login"`
}

// AdminResponse represents the admin identity in API responses.
type AdminResponse struct {
	Login string `json:"login"`
}

// RegisterAdminEndpoints registers the admin API endpoints.
//
// PUT /admin unconditionally overwrites the admin identity and
// requires no authentication; that matches the reference behavior of
// the service (the latest caller wins). Deployments that need the
// operation gated should front it with network policy. Every
// overwrite is audited.
func RegisterAdminEndpoints(s *server.Server) {
	resources := s.Resources

	s.Router.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		var payload AdminPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if payload.Login == "" {
			respondWithError(w, http.StatusBadRequest, "login must not be empty")
			return
		}

		previous, _ := resources.Admin()
		resources.SetAdmin(payload.Login)

		audit.Log(audit.AdminEvent{
			NewAdmin:      payload.Login,
			PreviousAdmin: previous,
			ClientIP:      clientIP(r),
		})
		respondWithJSON(w, http.StatusOK, AdminResponse{Login: payload.Login})
	}).Methods("PUT")

	s.Router.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		login, ok := resources.Admin()
		if !ok {
			respondWithError(w, http.StatusNotFound, "No admin set")
			return
		}
		respondWithJSON(w, http.StatusOK, AdminResponse{Login: login})
	}).Methods("GET")
}
