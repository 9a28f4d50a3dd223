package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/benx421/card-authorizer/internal/models"
)

// OperationSource yields operations in arrival order and io.EOF when exhausted
type OperationSource interface {
	Next() (models.Operation, error)
}

// StateSink receives the state produced by each operation
type StateSink interface {
	Encode(state models.AccountState) error
}

// Process drains src through the authorizer, writing one state per operation.
// Cancellation is observed between operations only.
func (h *Handler) Process(ctx context.Context, src OperationSource, sink StateSink) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("processing interrupted after %d operations: %w", h.sequence, err)
		}

		op, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		state, err := h.Handle(ctx, op)
		if err != nil {
			return err
		}

		if err := sink.Encode(state); err != nil {
			return fmt.Errorf("failed to write state for line %d: %w", op.Line, err)
		}
	}

	h.logger.InfoContext(ctx, "operations processed", "count", h.sequence)

	return nil
}
