// Package main provides the entry point for the magnitude MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/config"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/mkarlsen/magnitude/internal/server"
	"github.com/mkarlsen/magnitude/internal/tools"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("magnitude starting",
		"version", version,
		"catalog", cfg.CatalogPath,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Load the catalog; it stays immutable for the process lifetime.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "objects", cat.Len(), "version", cat.Metadata().Version)

	// Create server with logging middleware
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools over the query engine
	deps := &tools.Dependencies{
		Engine: scale.New(cat),
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)

	// Run until disconnect or signal
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("magnitude stopped")
}
