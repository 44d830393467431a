package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/socialnet/internal/config"
	"github.com/iudanet/socialnet/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.Any("error", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger.InfoContext(ctx, "Starting Socialnet server",
		slog.String("version", Version),
		slog.String("config", cfg.String()))

	store, err := server.OpenStorage(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open storage", slog.Any("error", err))
		return 1
	}

	app, err := server.NewApp(cfg, logger, store, Version)
	if err != nil {
		_ = store.Close()
		logger.ErrorContext(ctx, "Failed to initialize server", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close server resources", slog.Any("error", err))
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "Server stopped with error", slog.Any("error", err))
		return 1
	}

	logger.Info("Server stopped")
	return 0
}

func printVersion() {
	fmt.Printf("Socialnet Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
