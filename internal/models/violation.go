package models

// Violation is the reason an operation was rejected.
//
// The labels are part of the output wire format and must not change.
type Violation string

const (
	ViolationAccountAlreadyInitialized  Violation = "account-already-initialized"
	ViolationAccountNotInitialized      Violation = "account-not-initialized"
	ViolationInactiveCard               Violation = "inactive-card"
	ViolationInsufficientLimit          Violation = "insufficient-limit"
	ViolationHighFrequencySmallInterval Violation = "high-frequency-small-interval"
	ViolationDuplicatedTransaction      Violation = "duplicated-tx"
)

func (v Violation) String() string {
	return string(v)
}
