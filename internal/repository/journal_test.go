package repository

import (
	"context"
	"testing"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepository_Record(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewJournalRepository(database)
	sessionID := uuid.New()

	tests := []struct {
		entry   *models.JournalEntry
		name    string
		wantErr bool
	}{
		{
			name: "record accepted account operation",
			entry: &models.JournalEntry{
				SessionID:      sessionID,
				Sequence:       1,
				Kind:           models.OperationKindAccount,
				Payload:        `{"account":{"active-card":true,"available-limit":100}}`,
				ActiveCard:     true,
				AvailableLimit: 100,
			},
		},
		{
			name: "record rejected transaction with violations",
			entry: &models.JournalEntry{
				SessionID:      sessionID,
				Sequence:       2,
				Kind:           models.OperationKindTransaction,
				Payload:        `{"transaction":{"merchant":"Burger King","amount":500,"time":"2019-02-13T10:00:00.000Z"}}`,
				ActiveCard:     true,
				AvailableLimit: 100,
				Violations:     []string{"insufficient-limit"},
			},
		},
		{
			name: "record with pre-set ID",
			entry: &models.JournalEntry{
				ID:         uuid.New(),
				SessionID:  sessionID,
				Sequence:   3,
				Kind:       models.OperationKindTransaction,
				Payload:    `{}`,
				ActiveCard: true,
			},
		},
		{
			name: "duplicate sequence within session",
			entry: &models.JournalEntry{
				SessionID: sessionID,
				Sequence:  1,
				Kind:      models.OperationKindAccount,
				Payload:   `{}`,
			},
			wantErr: true,
		},
		{
			name: "negative available limit",
			entry: &models.JournalEntry{
				SessionID:      uuid.New(),
				Sequence:       1,
				Kind:           models.OperationKindAccount,
				Payload:        `{}`,
				AvailableLimit: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presetID := tt.entry.ID

			err := repo.Record(context.Background(), tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, tt.entry.ID)
			assert.False(t, tt.entry.CreatedAt.IsZero())
			if presetID != uuid.Nil {
				assert.Equal(t, presetID, tt.entry.ID)
			}
		})
	}
}

func TestJournalRepository_FindBySession(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewJournalRepository(database)
	ctx := context.Background()
	sessionID := uuid.New()

	for seq, violations := range [][]string{nil, {"duplicated-tx"}, {"insufficient-limit", "high-frequency-small-interval"}} {
		err := repo.Record(ctx, &models.JournalEntry{
			SessionID:      sessionID,
			Sequence:       seq + 1,
			Kind:           models.OperationKindTransaction,
			Payload:        `{}`,
			ActiveCard:     true,
			AvailableLimit: 80,
			Violations:     violations,
		})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Record(ctx, &models.JournalEntry{
		SessionID: uuid.New(),
		Sequence:  1,
		Kind:      models.OperationKindAccount,
		Payload:   `{}`,
	}))

	t.Run("returns session entries in sequence order", func(t *testing.T) {
		entries, err := repo.FindBySession(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Sequence)
			assert.Equal(t, sessionID, entry.SessionID)
			assert.Equal(t, models.OperationKindTransaction, entry.Kind)
		}
		assert.Empty(t, entries[0].Violations)
		assert.Equal(t, []string{"duplicated-tx"}, entries[1].Violations)
		assert.Equal(t, []string{"insufficient-limit", "high-frequency-small-interval"}, entries[2].Violations)
	})

	t.Run("unknown session returns no entries", func(t *testing.T) {
		entries, err := repo.FindBySession(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
