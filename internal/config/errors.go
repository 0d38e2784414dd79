package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigMissing indicates the configuration file is absent. Every
	// operation except init requires a configuration.
	ErrConfigMissing = errors.New("config: " + FileName + " not found, run \"forma init\" first")

	// ErrInvalidConfig indicates a configuration value outside its
	// enumerated domain or a malformed document.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// ValidationError reports a single configuration field violation.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("config: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("config: field %q: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidConfig for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationErrors aggregates every field violation found in one pass.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "config: validation passed"
	}
	msg := fmt.Sprintf("config: validation failed with %d error(s)", len(e.Errors))
	for i := range e.Errors {
		msg += "; " + e.Errors[i].Error()
	}
	return msg
}

// Is supports errors.Is against ErrInvalidConfig.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidConfig
}
