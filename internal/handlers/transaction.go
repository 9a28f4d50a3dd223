package handlers

import (
	"context"

	"github.com/benx421/card-authorizer/internal/models"
)

// ExecuteTransaction handles a transaction operation
func (h *Handler) ExecuteTransaction(ctx context.Context, tx models.Transaction) models.AccountState {
	state := h.authorizer.RegisterTransaction(tx)

	if !state.Accepted() {
		h.logger.InfoContext(ctx, "transaction rejected",
			"merchant", tx.Merchant,
			"amount", tx.Amount,
			"violations", state.ViolationLabels(),
		)
	}

	return state
}
