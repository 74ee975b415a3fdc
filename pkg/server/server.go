package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/eczemahub/pkg/config"
	"github.com/doodlesbykumbi/eczemahub/pkg/store"
)

type Server struct {
	Resources store.ResourceStore
	TokenKey  []byte
	Config    *config.Config
	Router    *mux.Router
	srv       *http.Server
}

func NewServer(
	resources store.ResourceStore,
	tokenKey []byte,
	cfg *config.Config,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Resources: resources,
		TokenKey:  tokenKey,
		Config:    cfg,
		Router:    router,
		srv:       srv,
	}
}

// Start listens on the configured address until Shutdown is called.
// It returns nil after a clean shutdown.
func (s *Server) Start() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting new connections and drains in-flight
// requests. After it returns no handler can touch the store, so the
// caller may safely snapshot.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
