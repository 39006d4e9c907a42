package seq_modeller

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing, mistyped or out-of-range field of the
// run configuration. It is always returned before any sequence is generated.
type ConfigurationError struct {
	Field  string // dotted path, e.g. sequences[1].inserts[0].max_split
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, a ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

var (
	ErrInvalidMutationRate = errors.New("mutation rate must be lower than 1")
	ErrUnsatisfiableSplit  = errors.New("split count exceeds available cut points")
)

// DomainError is raised while synthesizing a batch. Kind is one of the
// sentinel errors above so callers can match it with errors.Is.
type DomainError struct {
	Kind   error
	BaseID string
	Detail string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("batch %s: %v (%s)", e.BaseID, e.Kind, e.Detail)
}

func (e *DomainError) Unwrap() error { return e.Kind }
