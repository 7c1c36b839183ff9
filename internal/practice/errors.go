package practice

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is wrapped by InvalidInputError when the plan
// duration is below one day.
var ErrInvalidDuration = errors.New("duration must be at least 1 day")

// InvalidInputError rejects a request before any work is done.
type InvalidInputError struct {
	Field string
	Value any
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
