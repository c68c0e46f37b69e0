// Package api provides the HTTP API server for the greeting backend.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api/handlers"
	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api/health"
	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api/middleware"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/config"
)

// Version is the current version of the API server.
// This should be set at build time using ldflags.
var Version = "dev"

// rootInfo is the payload returned at the API root.
type rootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// Server represents the HTTP API server.
type Server struct {
	router        chi.Router
	httpServer    *http.Server
	config        *config.Config
	logger        *slog.Logger
	healthChecker *health.Checker
}

// NewServer creates a new API server with the given dependencies.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.healthChecker = health.NewChecker(Version)

	s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.APIAddr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// setupRouter configures the router with middleware and routes.
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Recovery(s.logger))
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// JSON error responses for unmatched routes and methods
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteNotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteMethodNotAllowed(w, "method not allowed")
	})

	// Health check endpoint
	r.Get("/health", s.healthChecker.Handler())

	// Root info endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, rootInfo{
			Message: "Greeting API",
			Version: Version,
			Status:  "running",
		})
	})

	// Greeting routes. The canonical path carries a trailing slash; the bare
	// path redirects to it, matching how the endpoint has always been served.
	helloHandler := handlers.NewHelloHandler(s.config.Greeting, s.logger)
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello/", helloHandler.GetHello)
		r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/api/hello/", http.StatusMovedPermanently)
		})
	})

	s.router = r
}

// Start starts the HTTP server and blocks until the context is canceled,
// the server is shut down, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting API server", "addr", s.httpServer.Addr, "greeting", s.config.Greeting)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			// Closed without an error: somebody shut the server down.
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Router returns the chi router for testing purposes.
func (s *Server) Router() chi.Router {
	return s.router
}
