// Package main runs the greeting backend and the web frontend in a
// single process for local development.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api"
	"github.com/Thiyagadurden/Kanini-Hackathon/internal/shutdown"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/config"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/logger"
	"github.com/Thiyagadurden/Kanini-Hackathon/web"
)

func main() {
	// Local development overrides, ignored when the file is absent
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.Default()
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.SlogLevel(), cfg.LogFormat == "json")

	// Create both servers, each tagging its own log lines
	apiServer := api.NewServer(cfg, log.WithComponent("api").Logger)
	webServer, err := web.NewServer(cfg, log.WithComponent("web").Logger)
	if err != nil {
		log.Error("failed to create web server", "error", err)
		os.Exit(1)
	}

	// Shutdown runs LIFO, so registering the backend first means the
	// frontend stops proxying before the backend goes away.
	coordinator := shutdown.NewCoordinator(
		shutdown.WithTimeout(cfg.ShutdownTimeout),
		shutdown.WithLogger(log.Logger),
	)
	coordinator.Register(shutdown.NewFuncComponent("api-server", apiServer.Shutdown))
	coordinator.Register(shutdown.NewFuncComponent("web-server", webServer.Shutdown))

	go coordinator.WaitForSignal()

	log.Info("starting development servers",
		"api_addr", cfg.APIAddr(),
		"web_addr", cfg.WebAddr(),
	)

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error { return apiServer.Start(gctx) })
	g.Go(func() error { return webServer.Start(gctx) })

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		coordinator.Shutdown()
		os.Exit(1)
	}

	coordinator.Wait()
	log.Info("all servers stopped")
	os.Exit(coordinator.ExitCode())
}
