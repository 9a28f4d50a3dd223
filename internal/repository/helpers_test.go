package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/benx421/card-authorizer/internal/config"
	"github.com/benx421/card-authorizer/internal/db"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping journal database tests")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	database, err := db.NewTestDB(context.Background(), &cfg.Database)
	if err != nil {
		t.Fatalf("failed to prepare test database: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE operation_journal")
	if err != nil {
		t.Fatalf("failed to truncate table operation_journal: %v", err)
	}
}
