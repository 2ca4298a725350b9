package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a caller-supplied argument is out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration is returned when the simulator's own settings are out of range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNotYetSimulated is returned by percentile queries issued before a successful run.
	ErrNotYetSimulated = errors.New("no simulations run yet")
)

// ValidationError describes which field failed validation. It unwraps to
// one of the sentinel errors above so callers can use errors.Is.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalidInput(field, format string, args ...any) error {
	return &ValidationError{Kind: ErrInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

func invalidConfiguration(field, format string, args ...any) error {
	return &ValidationError{Kind: ErrInvalidConfiguration, Field: field, Message: fmt.Sprintf(format, args...)}
}
