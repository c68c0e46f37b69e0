// Package web provides the HTTP server for the greeting frontend. It
// serves the landing page, proxies API calls to the greeting backend,
// and reports its own health.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api/middleware"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/config"
	"github.com/Thiyagadurden/Kanini-Hackathon/web/api"
	"github.com/Thiyagadurden/Kanini-Hackathon/web/greeting"
	"github.com/Thiyagadurden/Kanini-Hackathon/web/health"
	"github.com/Thiyagadurden/Kanini-Hackathon/web/pages"
)

const pageTitle = "Kanini Hackathon"

// Server represents the HTTP server for the web frontend.
type Server struct {
	router        chi.Router
	httpServer    *http.Server
	config        *config.Config
	logger        *slog.Logger
	client        *api.Client
	renderer      *pages.Renderer
	proxy         *httputil.ReverseProxy
	healthChecker *health.Checker
}

// NewServer creates a new web server with the given dependencies.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := pages.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API URL %q: %w", cfg.APIURL, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(apiURL)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("proxying API request failed", "error", err, "path", r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		client:   api.NewClient(cfg.APIURL),
		renderer: renderer,
		proxy:    proxy,
	}

	s.healthChecker = health.NewChecker(s.client.Health, health.WebVersion)

	s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.WebAddr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
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

	// Health check endpoint
	r.Get("/health", s.healthChecker.Handler())

	// Landing page
	r.Get("/", s.handleIndex)

	// Everything under /api is forwarded to the greeting backend so the
	// page and the API share an origin.
	r.Handle("/api/*", s.proxy)

	s.router = r
}

// handleIndex serves the landing page. Every page load is a fresh
// mount: the view fetches the greeting once and the page shows
// whatever state that single fetch produced.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := greeting.NewView(s.client, s.logger)
	view.Init(r.Context())

	text := view.Text()
	accent := "text-emerald-600"
	if text == greeting.FallbackText {
		accent = "text-red-600"
	}

	data := pages.IndexData{
		Title:        pageTitle,
		Heading:      pageTitle,
		Message:      text,
		MessageClass: pages.MessageClass(accent),
	}

	if err := s.renderer.Index(w, data); err != nil {
		s.logger.Error("failed to render index", "error", err, "view_id", view.ID())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Start starts the HTTP server and blocks until the context is canceled,
// the server is shut down, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting web server", "addr", s.httpServer.Addr, "api_url", s.config.APIURL)

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
	s.logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Router returns the chi router for testing purposes.
func (s *Server) Router() chi.Router {
	return s.router
}
