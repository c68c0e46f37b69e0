// Package main provides the entry point for the greeting API server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/Thiyagadurden/Kanini-Hackathon/internal/api"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/config"
	"github.com/Thiyagadurden/Kanini-Hackathon/pkg/logger"
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
	log := logger.New(cfg.SlogLevel(), cfg.LogFormat == "json").WithComponent("api")

	// Create the API server
	server := api.NewServer(cfg, log.Logger)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Start the server
	log.Info("starting API server",
		"host", cfg.APIHost,
		"port", cfg.APIPort,
	)

	if err := server.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	// Give time for graceful shutdown
	time.Sleep(100 * time.Millisecond)
	log.Info("server stopped")
}
