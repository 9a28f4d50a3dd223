package models

// AccountState is the observable result of a single operation.
// An empty Violations list means the operation was accepted.
type AccountState struct {
	ActiveCard     bool        `json:"active_card"`
	AvailableLimit int64       `json:"available_limit"`
	Violations     []Violation `json:"violations"`
}

// NewAccountState creates an AccountState. Violations is never nil so the
// encoded form always carries a list.
func NewAccountState(activeCard bool, availableLimit int64, violations ...Violation) AccountState {
	list := make([]Violation, 0, len(violations))
	list = append(list, violations...)

	return AccountState{
		ActiveCard:     activeCard,
		AvailableLimit: availableLimit,
		Violations:     list,
	}
}

// NotInitializedState is returned for transactions submitted before any account exists
func NotInitializedState() AccountState {
	return NewAccountState(false, 0, ViolationAccountNotInitialized)
}

// InactiveState is returned for transactions against an account whose card is not active
func InactiveState(availableLimit int64) AccountState {
	return NewAccountState(false, availableLimit, ViolationInactiveCard)
}

// Accepted reports whether the operation produced no violations
func (s AccountState) Accepted() bool {
	return len(s.Violations) == 0
}

// ViolationLabels returns the violations as plain strings
func (s AccountState) ViolationLabels() []string {
	labels := make([]string, 0, len(s.Violations))
	for _, v := range s.Violations {
		labels = append(labels, v.String())
	}
	return labels
}
