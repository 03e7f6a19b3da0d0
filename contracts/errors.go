package contracts

import (
	"errors"
	"fmt"
)

// ErrIncompleteConfiguration indicates a builder was finalized before all
// required dependencies were supplied. The build may be retried after the
// missing field is set.
var ErrIncompleteConfiguration = errors.New("incomplete configuration")

// ErrBuilderConsumed indicates a builder was reused after a successful
// build. A builder produces exactly one queue.
var ErrBuilderConsumed = errors.New("builder already consumed")

// BuildError reports which builder field caused a build to fail
type BuildError struct {
	Field string
}

// NewBuildError creates a build error for a missing or invalid field
func NewBuildError(field string) *BuildError {
	return &BuildError{Field: field}
}

// Error returns the error message
func (e *BuildError) Error() string {
	return fmt.Sprintf("incomplete configuration: %s not set", e.Field)
}

// Unwrap returns ErrIncompleteConfiguration so errors.Is matches
func (e *BuildError) Unwrap() error {
	return ErrIncompleteConfiguration
}
