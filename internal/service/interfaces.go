package service

import (
	"github.com/benx421/card-authorizer/internal/models"
)

// TransactionAuthorizer applies account operations to a single-account session
type TransactionAuthorizer interface {
	CreateAccount(account *Account) models.AccountState
	RegisterTransaction(tx models.Transaction) models.AccountState
}

// Ensure concrete types implement interfaces
var (
	_ TransactionAuthorizer = (*Authorizer)(nil)
)
