package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/web/handlers"
	"github.com/streetdivider/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	divider    *divider.Divider
	loader     handlers.StreetLoader
	cache      *lru.Cache[string, divider.Location]
	httpServer *http.Server
	router     *mux.Router
	handler    http.Handler
}

// NewServer creates a new web server instance. loader may be nil, which
// leaves the reload endpoint out.
func NewServer(config *Config, div *divider.Divider, loader handlers.StreetLoader) (*Server, error) {
	server := &Server{
		config:  config,
		divider: div,
		loader:  loader,
	}

	if config.Cache.Size > 0 {
		cache, err := lru.New[string, divider.Location](config.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to create parse cache: %w", err)
		}
		server.cache = cache
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	// Convert config for handlers (to avoid import cycle)
	handlerConfig := &handlers.Config{
		MaxBatch: s.config.Features.MaxBatch,
		Workers:  s.config.Features.Workers,
	}

	parseHandler := &handlers.ParseHandler{Divider: s.divider, Cache: s.cache, Config: handlerConfig}
	streetsHandler := &handlers.StreetsHandler{Divider: s.divider, Cache: s.cache, Load: s.loader}

	s.router.HandleFunc("/healthz", handlers.Health).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/parse", parseHandler.ParseOne).Methods("GET")
	api.HandleFunc("/parse", parseHandler.ParseBatch).Methods("POST")
	api.HandleFunc("/streets", streetsHandler.Lookup).Methods("GET")

	if s.config.Features.ReloadEnabled && s.loader != nil {
		api.HandleFunc("/streets/reload", streetsHandler.Reload).Methods("POST")
	}

	s.router.Use(middleware.RequestLogging())
	api.Use(middleware.APIKey(s.config.Auth.APIKey))

	// CORS wraps the router so preflights reach it without a matching route
	s.handler = middleware.CORS()(s.router)
}

// Handler exposes the full middleware chain, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", "http://"+s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
