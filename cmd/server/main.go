package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/iudanet/divelog/internal/client/api"
	"github.com/iudanet/divelog/internal/config"
	"github.com/iudanet/divelog/internal/server"
	"github.com/iudanet/divelog/internal/server/handlers"
	"github.com/iudanet/divelog/internal/server/metrics"
	"github.com/iudanet/divelog/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer(os.Args[1:], os.Getenv)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		printVersion()
		return nil
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	srv := server.New(server.Config{
		Logger:       logger,
		Store:        store,
		Fetcher:      api.NewClient(cfg.CloudURL, cfg.HTTPTimeout),
		Metrics:      metrics.New(),
		Version:      Version,
		ShareBaseURL: cfg.ShareBaseURL,
		JWT:          handlers.JWTConfig{Secret: []byte(cfg.JWTSecret), SessionTTL: cfg.SessionTTL},
		RateLimit:    cfg.RateLimit,
		RateWindow:   cfg.RateWindow,
	})
	defer srv.Close()

	go srv.CleanupSessions(ctx, cfg.CleanupInterval)

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	logger.Info("divelog server starting",
		slog.String("version", Version),
		slog.String("addr", cfg.Addr),
		slog.String("db", cfg.DBPath))

	return srv.Serve(ctx, listener, shutdownTimeout)
}

func printVersion() {
	fmt.Printf("Divelog Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
