package service

import (
	"github.com/benx421/card-authorizer/internal/models"
)

// Account holds the card limit and the history of accepted transactions
type Account struct {
	transactions   []models.Transaction
	availableLimit int64
	activeCard     bool
}

// NewAccount creates an Account, optionally seeded with previously accepted transactions
func NewAccount(availableLimit int64, activeCard bool, history ...models.Transaction) *Account {
	transactions := make([]models.Transaction, 0, len(history))
	transactions = append(transactions, history...)

	return &Account{
		availableLimit: availableLimit,
		activeCard:     activeCard,
		transactions:   transactions,
	}
}

// ExecuteTransaction runs every account rule against tx and applies it only
// when none of them is violated.
//
// On rejection the account is left untouched and all violations are returned
// in rule order; the returned state is then the zero value.
func (a *Account) ExecuteTransaction(tx models.Transaction) (models.AccountState, []models.Violation) {
	var violations []models.Violation
	for _, r := range accountRules {
		if r.check(a, tx) {
			violations = append(violations, r.violation)
		}
	}

	if len(violations) > 0 {
		return models.AccountState{}, violations
	}

	a.availableLimit -= tx.Amount
	a.transactions = append(a.transactions, tx)

	return a.State(), nil
}

// AvailableLimit returns the limit left for new transactions
func (a *Account) AvailableLimit() int64 {
	return a.availableLimit
}

// ActiveCard reports whether the card was active at creation
func (a *Account) ActiveCard() bool {
	return a.activeCard
}

// IsInactive reports whether the card is not active
func (a *Account) IsInactive() bool {
	return !a.activeCard
}

// State returns a snapshot of the account without violations
func (a *Account) State() models.AccountState {
	return models.NewAccountState(a.activeCard, a.availableLimit)
}

// InvalidState returns a snapshot of the account annotated with violations
func (a *Account) InvalidState(violations ...models.Violation) models.AccountState {
	return models.NewAccountState(a.activeCard, a.availableLimit, violations...)
}

// Transactions returns a copy of the accepted transactions in arrival order
func (a *Account) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// latestPair returns the two most recently accepted transactions.
// Callers must ensure at least two exist.
func (a *Account) latestPair() (previous, last models.Transaction) {
	total := len(a.transactions)
	return a.transactions[total-2], a.transactions[total-1]
}
