// Package repository provides data access for the operation journal.
package repository

import (
	"context"
	"fmt"

	"github.com/benx421/card-authorizer/internal/db"
	"github.com/benx421/card-authorizer/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JournalRepository defines the interface for journal data access
type JournalRepository interface {
	Record(ctx context.Context, entry *models.JournalEntry) error
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.JournalEntry, error)
}

// journalRepository implements JournalRepository
type journalRepository struct {
	db *db.DB
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(database *db.DB) JournalRepository {
	return &journalRepository{db: database}
}

// Record appends an entry to the journal. A nil ID is replaced with a fresh one.
func (r *journalRepository) Record(ctx context.Context, entry *models.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	violations := entry.Violations
	if violations == nil {
		violations = []string{}
	}

	query := `
		INSERT INTO operation_journal (
			id, session_id, sequence, kind, payload,
			active_card, available_limit, violations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.Sequence,
		entry.Kind,
		entry.Payload,
		entry.ActiveCard,
		entry.AvailableLimit,
		pq.Array(violations),
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}

	return nil
}

// FindBySession returns every entry of a session in sequence order
func (r *journalRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.JournalEntry, error) {
	query := `
		SELECT id, session_id, sequence, kind, payload,
		       active_card, available_limit, violations, created_at
		FROM operation_journal
		WHERE session_id = $1
		ORDER BY sequence ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		var violations []string
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Sequence,
			&entry.Kind,
			&entry.Payload,
			&entry.ActiveCard,
			&entry.AvailableLimit,
			pq.Array(&violations),
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entry.Violations = violations
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return entries, nil
}
