package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/benx421/card-authorizer/internal/models"
)

// ErrUnknownOperation is returned for operations carrying no known payload
var ErrUnknownOperation = errors.New("unknown operation")

// Handle applies one operation and returns the resulting account state
func (h *Handler) Handle(ctx context.Context, op models.Operation) (models.AccountState, error) {
	var state models.AccountState

	switch {
	case op.Kind == models.OperationKindAccount && op.Account != nil:
		state = h.CreateAccount(ctx, op.Account)
	case op.Kind == models.OperationKindTransaction && op.Transaction != nil:
		state = h.ExecuteTransaction(ctx, *op.Transaction)
	default:
		return models.AccountState{}, fmt.Errorf("line %d: %w: kind %q", op.Line, ErrUnknownOperation, op.Kind)
	}

	h.sequence++

	h.logger.DebugContext(ctx, "operation processed",
		"sequence", h.sequence,
		"line", op.Line,
		"kind", op.Kind,
		"active_card", state.ActiveCard,
		"available_limit", state.AvailableLimit,
		"violations", state.ViolationLabels(),
	)

	if h.metrics != nil {
		h.metrics.RecordOperation(op.Kind, state)
	}

	h.recordJournal(ctx, op, state)

	return state, nil
}

// recordJournal appends the operation to the journal. Failures are logged only.
func (h *Handler) recordJournal(ctx context.Context, op models.Operation, state models.AccountState) {
	if h.journal == nil {
		return
	}

	entry := &models.JournalEntry{
		SessionID:      h.sessionID,
		Sequence:       h.sequence,
		Kind:           op.Kind,
		Payload:        op.Raw,
		ActiveCard:     state.ActiveCard,
		AvailableLimit: state.AvailableLimit,
		Violations:     state.ViolationLabels(),
	}

	if err := h.journal.Record(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to record journal entry",
			"sequence", h.sequence,
			"error", err,
		)
	}
}
