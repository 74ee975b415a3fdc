package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"github.com/doodlesbykumbi/eczemahub/pkg/audit"
	"github.com/doodlesbykumbi/eczemahub/pkg/model"
	"github.com/doodlesbykumbi/eczemahub/pkg/server"
	"github.com/doodlesbykumbi/eczemahub/pkg/server/middleware"
	"github.com/doodlesbykumbi/eczemahub/pkg/store"
)

// ResourcePayload is the request body for create and update.
// Category must be one of the closed enumeration names; unknown names
// are rejected while decoding.
type ResourcePayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    model.Category `json:"category"`
}

// ResourceResponse represents a resource in the API response.
// DescriptionHTML is present only when the caller asked for the
// description rendered as Markdown (?render=html).
type ResourceResponse struct {
	model.Resource
	DescriptionHTML string `json:"description_html,omitempty"`
}

// RegisterResourcesEndpoints registers the resources API endpoints
func RegisterResourcesEndpoints(s *server.Server) {
	resources := s.Resources

	tokenMiddleware := middleware.NewTokenAuthenticator(s.TokenKey)

	r := s.Router

	// GET /resources               - list; ?category= filters, ?search=
	//                                searches, ?count=true counts
	// POST /resources              - create
	r.HandleFunc("/resources", handleListResources(resources)).Methods("GET")
	r.HandleFunc("/resources", handleCreateResource(resources)).Methods("POST")

	// GET/PUT/DELETE /resources/{id} - single resource
	r.HandleFunc("/resources/{id:[0-9]+}", handleShowResource(resources)).Methods("GET")
	r.HandleFunc("/resources/{id:[0-9]+}", handleUpdateResource(resources)).Methods("PUT")
	r.HandleFunc("/resources/{id:[0-9]+}", handleDeleteResource(resources)).Methods("DELETE")

	// POST /resources/{id}/verify - admin only, bearer token required
	r.Handle(
		"/resources/{id:[0-9]+}/verify",
		tokenMiddleware.Middleware(handleVerifyResource(resources)),
	).Methods("POST")
}

func handleListResources(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var list []model.Resource

		switch {
		case r.URL.Query().Has("search"):
			list = resources.Search(r.URL.Query().Get("search"))
		case r.URL.Query().Has("category"):
			category, err := model.CategoryString(r.URL.Query().Get("category"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Unknown category")
				return
			}
			list = resources.ListByCategory(category)
		default:
			list = resources.List()
		}

		if r.URL.Query().Get("count") == "true" {
			respondWithJSON(w, http.StatusOK, map[string]int{"count": len(list)})
			return
		}

		respondWithJSON(w, http.StatusOK, list)
	}
}

func handleCreateResource(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ResourcePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resource, err := resources.Create(payload.Title, payload.Description, payload.Category)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.ResourceEvent{
			Operation:  "create",
			ResourceID: resource.ID,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithJSON(w, http.StatusCreated, resource)
	}
}

func handleShowResource(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid resource id")
			return
		}

		resource, err := resources.Get(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := ResourceResponse{Resource: *resource}
		if r.URL.Query().Get("render") == "html" {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(resource.Description), &buf); err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
			response.DescriptionHTML = buf.String()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleUpdateResource(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid resource id")
			return
		}

		var payload ResourcePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resource, err := resources.Update(id, payload.Title, payload.Description, payload.Category)
		if err != nil {
			audit.Log(audit.ResourceEvent{
				Operation:    "update",
				ResourceID:   id,
				ClientIP:     clientIP(r),
				ErrorMessage: err.Error(),
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.ResourceEvent{
			Operation:  "update",
			ResourceID: id,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithJSON(w, http.StatusOK, resource)
	}
}

func handleDeleteResource(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid resource id")
			return
		}

		if err := resources.Delete(id); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.ResourceEvent{
			Operation:  "delete",
			ResourceID: id,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleVerifyResource(resources store.ResourceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid resource id")
			return
		}

		caller := callerLogin(r)

		resource, err := resources.Verify(id, caller)
		if err != nil {
			audit.Log(audit.VerifyEvent{
				Caller:       caller,
				ResourceID:   id,
				ClientIP:     clientIP(r),
				ErrorMessage: err.Error(),
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.VerifyEvent{
			Caller:     caller,
			ResourceID: id,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithJSON(w, http.StatusOK, resource)
	}
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
