package api

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is matched by every DecodeError
var ErrInvalidOperation = errors.New("invalid operation")

// DecodeError reports an input line that could not be turned into an operation
type DecodeError struct {
	Err   error
	Input string
	Line  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: invalid operation '%s': %v", e.Line, e.Input, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidOperation) hold for any DecodeError
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidOperation
}
