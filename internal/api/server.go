// Package api provides the HTTP API server and handlers for the PageTurn application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
)

// Version is the API version reported by the OpenAPI document and the
// health endpoint.
const Version = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *sqlite.Store
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *sqlite.Store, services *Services, serverName string, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig(serverName, Version)
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    store,
		services: services,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerAuthorRoutes()
	s.registerBookRoutes()
	s.registerCustomerRoutes()
	s.registerOrderRoutes()
	s.registerCatalogRoutes()
	s.registerReportRoutes()
	s.registerExportRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
