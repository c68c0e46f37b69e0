// Package main provides the entry point for the web frontend server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

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
	log := logger.New(cfg.SlogLevel(), cfg.LogFormat == "json").WithComponent("web")

	// Create the web server
	server, err := web.NewServer(cfg, log.Logger)
	if err != nil {
		log.Error("failed to create web server", "error", err)
		os.Exit(1)
	}

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
	log.Info("starting web server",
		"host", cfg.WebHost,
		"port", cfg.WebPort,
		"api_url", cfg.APIURL,
	)

	if err := server.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	// Give time for graceful shutdown
	time.Sleep(100 * time.Millisecond)
	log.Info("server stopped")
}
