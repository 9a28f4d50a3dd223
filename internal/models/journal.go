package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records one processed operation and the state it produced
type JournalEntry struct {
	CreatedAt      time.Time     `db:"created_at"`
	Kind           OperationKind `db:"kind"`
	Payload        string        `db:"payload"`
	Violations     []string      `db:"violations"`
	AvailableLimit int64         `db:"available_limit"`
	Sequence       int           `db:"sequence"`
	ActiveCard     bool          `db:"active_card"`
	ID             uuid.UUID     `db:"id"`
	SessionID      uuid.UUID     `db:"session_id"`
}
