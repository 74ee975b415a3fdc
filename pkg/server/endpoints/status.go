package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/eczemahub/pkg/server"
)

// StatusResponse represents the response from the /health endpoint
type StatusResponse struct {
	Status    string `json:"status"`
	Resources int    `json:"resources"`
}

// RegisterStatusEndpoints registers the /health endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:    "ok",
			Resources: len(s.Resources.List()),
		})
	}).Methods("GET")
}
