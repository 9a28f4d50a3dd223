package models

// OperationKind identifies which operation an input line carries
type OperationKind string

const (
	OperationKindAccount     OperationKind = "account"
	OperationKindTransaction OperationKind = "transaction"
)

// AccountInput holds the fields submitted to create an account
type AccountInput struct {
	AvailableLimit int64 `json:"available-limit"`
	ActiveCard     bool  `json:"active-card"`
}

// Operation is one decoded input record. Exactly one of Account or
// Transaction is set, matching Kind.
type Operation struct {
	Account     *AccountInput
	Transaction *Transaction
	Kind        OperationKind
	Raw         string
	Line        int
}
