package models

import "time"

// Transaction is a purchase attempt against the account, amount in minor units
type Transaction struct {
	Time     time.Time `json:"time"`
	Merchant string    `json:"merchant"`
	Amount   int64     `json:"amount"`
}

// NewTransaction creates a Transaction
func NewTransaction(amount int64, merchant string, at time.Time) Transaction {
	return Transaction{
		Amount:   amount,
		Merchant: merchant,
		Time:     at,
	}
}

// SecondsSince returns the signed number of whole seconds elapsed between
// other and tx, truncated toward zero. It is negative when tx happened first.
func (tx Transaction) SecondsSince(other Transaction) int64 {
	return int64(tx.Time.Sub(other.Time) / time.Second)
}

// SameAs reports whether both transactions carry the same merchant and amount.
// Time is deliberately not part of the comparison.
func (tx Transaction) SameAs(other Transaction) bool {
	return tx.Merchant == other.Merchant && tx.Amount == other.Amount
}
