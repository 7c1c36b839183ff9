package catalog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned when a catalog declares a format major
// version this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// ValidationError indicates a catalog file failed schema or content checks.
type ValidationError struct {
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid catalog: %v", e.Err)
	}
	return fmt.Sprintf("invalid catalog %s: %v", e.File, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
