package service

import (
	"github.com/benx421/card-authorizer/internal/models"
)

// Authorizer is a single-account session. Operations must be applied one at
// a time in arrival order; it does no locking.
type Authorizer struct {
	account *Account
}

// NewAuthorizer creates an Authorizer with no account
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// CreateAccount adopts account when none is held yet.
//
// A second call never touches the held account. It reports the fields of the
// account passed in, not of the held one, annotated with
// account-already-initialized.
func (s *Authorizer) CreateAccount(account *Account) models.AccountState {
	if s.account != nil {
		return account.InvalidState(models.ViolationAccountAlreadyInitialized)
	}

	s.account = account

	return account.State()
}

// RegisterTransaction authorizes tx against the held account
func (s *Authorizer) RegisterTransaction(tx models.Transaction) models.AccountState {
	if s.account == nil {
		return models.NotInitializedState()
	}

	if s.account.IsInactive() {
		return models.InactiveState(s.account.availableLimit)
	}

	state, violations := s.account.ExecuteTransaction(tx)
	if len(violations) > 0 {
		return s.account.InvalidState(violations...)
	}

	return state
}

// HeldAccount returns the account adopted by the session, if any
func (s *Authorizer) HeldAccount() (*Account, bool) {
	return s.account, s.account != nil
}
