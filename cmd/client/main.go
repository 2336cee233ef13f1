package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iudanet/divelog/internal/client/api"
	"github.com/iudanet/divelog/internal/client/cli"
	"github.com/iudanet/divelog/internal/client/data"
	"github.com/iudanet/divelog/internal/client/iocli"
	"github.com/iudanet/divelog/internal/client/session"
	"github.com/iudanet/divelog/internal/client/storage/boltdb"
	"github.com/iudanet/divelog/internal/config"
	"github.com/iudanet/divelog/internal/l10n"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, args, err := config.LoadClient(os.Args[1:], os.Getenv)
	if errors.Is(err, pflag.ErrHelp) {
		cli.New(cli.Options{IO: iocli.NewStdio(), Localizer: l10n.New(l10n.SystemLocales(os.Getenv)...)}).PrintUsage()
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	locales := l10n.SystemLocales(os.Getenv)
	if cfg.Language != "" {
		locales = []string{cfg.Language}
	}
	stdio := iocli.NewStdio()

	if len(args) == 0 {
		cli.New(cli.Options{IO: stdio, Localizer: l10n.New(locales...)}).PrintUsage()
		return fmt.Errorf("%w: no command", cli.ErrUsage)
	}
	command := args[0]
	if command == "version" {
		printVersion()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.CloudURL, cfg.HTTPTimeout)

	c := cli.New(cli.Options{
		IO:           stdio,
		Session:      session.NewStore(boltStorage),
		Data:         data.NewService(apiClient, boltStorage),
		Localizer:    l10n.New(locales...),
		ShareBaseURL: cfg.ShareBaseURL,
	})
	return c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Divelog Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
