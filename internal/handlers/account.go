package handlers

import (
	"context"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/benx421/card-authorizer/internal/service"
)

// CreateAccount handles an account operation
func (h *Handler) CreateAccount(ctx context.Context, input *models.AccountInput) models.AccountState {
	state := h.authorizer.CreateAccount(service.NewAccount(input.AvailableLimit, input.ActiveCard))

	if !state.Accepted() {
		h.logger.InfoContext(ctx, "account creation rejected",
			"available_limit", input.AvailableLimit,
			"violations", state.ViolationLabels(),
		)
	}

	return state
}
