package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benx421/card-authorizer/internal/api"
	"github.com/benx421/card-authorizer/internal/config"
	"github.com/benx421/card-authorizer/internal/db"
	"github.com/benx421/card-authorizer/internal/handlers"
	"github.com/benx421/card-authorizer/internal/metrics"
	"github.com/benx421/card-authorizer/internal/repository"
	"github.com/benx421/card-authorizer/internal/service"
)

const stdinPath = "-"

func main() {
	inputPath := flag.String("input", stdinPath, "operations file, one JSON object per line (- reads stdin)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting authorizer",
		"input", *inputPath,
		"log_level", cfg.Logger.Level,
		"journal_enabled", cfg.Journal.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, *inputPath, os.Stdin, os.Stdout, logger)
	stop()

	if err != nil {
		logger.Error("authorizer failed", "error", err)
		os.Exit(1)
	}

	logger.Info("authorizer stopped")
}

// run streams operations from inputPath to stdout until the input is exhausted,
// an operation is invalid or ctx is cancelled.
func run(
	ctx context.Context,
	cfg *config.Config,
	inputPath string,
	stdin io.Reader,
	stdout io.Writer,
	logger *slog.Logger,
) error {
	in, err := openInput(inputPath, stdin)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	var journal repository.JournalRepository
	if cfg.Journal.Enabled {
		database, err := db.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to journal database: %w", err)
		}
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close journal database", "error", err)
			}
		}()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to prepare journal: %w", err)
		}

		journal = repository.NewJournalRepository(database)
	}

	dec, err := api.NewDecoder(in, cfg.Input.MaxLineBytes)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	collector := metrics.NewCollector(logger)
	handler := handlers.NewHandler(service.NewAuthorizer(), journal, collector, logger)

	processErr := handler.Process(ctx, dec, api.NewEncoder(stdout))

	if cfg.Metrics.TextfilePath != "" {
		if err := collector.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Error("failed to export metrics", "error", err)
		}
	}

	return processErr
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinPath {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
