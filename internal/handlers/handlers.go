// Package handlers applies decoded operations to the authorizer.
package handlers

import (
	"log/slog"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/benx421/card-authorizer/internal/repository"
	"github.com/benx421/card-authorizer/internal/service"
	"github.com/google/uuid"
)

// MetricsRecorder counts processed operations
type MetricsRecorder interface {
	RecordOperation(kind models.OperationKind, state models.AccountState)
}

// Handler dispatches operations of one session. Journal and metrics are optional.
type Handler struct {
	authorizer service.TransactionAuthorizer
	journal    repository.JournalRepository
	metrics    MetricsRecorder
	logger     *slog.Logger
	sequence   int
	sessionID  uuid.UUID
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(
	authorizer service.TransactionAuthorizer,
	journal repository.JournalRepository,
	metrics MetricsRecorder,
	logger *slog.Logger,
) *Handler {
	sessionID := uuid.New()

	return &Handler{
		authorizer: authorizer,
		journal:    journal,
		metrics:    metrics,
		logger:     logger.With("session_id", sessionID.String()),
		sessionID:  sessionID,
	}
}

// SessionID identifies the run in logs and journal entries
func (h *Handler) SessionID() uuid.UUID {
	return h.sessionID
}

// Processed returns the number of operations handled so far
func (h *Handler) Processed() int {
	return h.sequence
}
