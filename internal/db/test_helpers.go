package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/benx421/card-authorizer/internal/config"
)

// NewTestDB opens the journal database described by cfg with a silent logger
// and applies the migrations. It is only for use in tests.
func NewTestDB(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	database := &DB{
		DB:     sqlDB,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if err := database.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping test database: %w", err)
	}

	if err := database.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return database, nil
}
