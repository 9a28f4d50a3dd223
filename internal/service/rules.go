package service

import (
	"github.com/benx421/card-authorizer/internal/models"
)

const (
	// highFrequencyWindow is how many accepted transactions must exist before
	// the frequency rule applies
	highFrequencyWindow = 3
	// highFrequencyIntervalSeconds bounds both gaps checked by the frequency rule
	highFrequencyIntervalSeconds = 120
)

// accountRule is one admission check. It never mutates the account.
type accountRule struct {
	check     func(account *Account, tx models.Transaction) bool
	violation models.Violation
}

// accountRules is evaluated in this order and the order is reflected in the
// reported violations.
var accountRules = []accountRule{
	{
		violation: models.ViolationInsufficientLimit,
		check:     insufficientLimit,
	},
	{
		violation: models.ViolationHighFrequencySmallInterval,
		check:     highFrequencySmallInterval,
	},
	{
		violation: models.ViolationDuplicatedTransaction,
		check:     duplicatedTransaction,
	},
}

func insufficientLimit(account *Account, tx models.Transaction) bool {
	return account.availableLimit < tx.Amount
}

// highFrequencySmallInterval checks the gap to the latest accepted transaction
// and the gap between the two latest ones. Deltas are signed, so timestamps
// earlier than the history count as inside the interval.
//
// The second gap is last minus previous, not last minus the oldest of the
// window: accepted transactions at 0s, 60s and 121s must reject one at 122s.
// Widening the pair to the whole window breaks that case.
func highFrequencySmallInterval(account *Account, tx models.Transaction) bool {
	if len(account.transactions) < highFrequencyWindow {
		return false
	}

	previous, last := account.latestPair()

	return tx.SecondsSince(last) <= highFrequencyIntervalSeconds &&
		last.SecondsSince(previous) <= highFrequencyIntervalSeconds
}

func duplicatedTransaction(account *Account, tx models.Transaction) bool {
	for _, accepted := range account.transactions {
		if accepted.SameAs(tx) {
			return true
		}
	}
	return false
}
