package api

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benx421/card-authorizer/internal/models"
)

// Encoder writes one JSON account state per line
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an Encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes state followed by a newline
func (e *Encoder) Encode(state models.AccountState) error {
	if state.Violations == nil {
		state.Violations = []models.Violation{}
	}

	if err := e.enc.Encode(state); err != nil {
		return fmt.Errorf("failed to write account state: %w", err)
	}
	return nil
}
