package endpoints

import (
	"github.com/doodlesbykumbi/eczemahub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterResourcesEndpoints(srv)
	RegisterAdminEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)
}
