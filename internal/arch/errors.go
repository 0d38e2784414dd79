package arch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for resolution failures.
var (
	// ErrInvalidName indicates a resource name failed PascalCase validation.
	ErrInvalidName = errors.New("arch: invalid resource name")

	// ErrUnknownType indicates a resource type outside the supported set.
	ErrUnknownType = errors.New("arch: unknown resource type")

	// ErrUnsupportedCombination indicates a resource type the configured
	// framework cannot host (api routes on react).
	ErrUnsupportedCombination = errors.New("arch: unsupported framework/type combination")
)

// InvalidNameError reports a name that is not valid PascalCase.
type InvalidNameError struct {
	Name string
	Type ResourceType
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: must be PascalCase (start with an uppercase letter, letters and digits only)", e.Type, e.Name)
}

// Unwrap returns ErrInvalidName for errors.Is support.
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// UnknownTypeError reports a resource type outside the supported set.
type UnknownTypeError struct {
	Type string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown resource type %q", e.Type)
}

// Unwrap returns ErrUnknownType for errors.Is support.
func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// UnknownAtomicLevelError reports an atomic level outside the valid set
// for the configured framework.
type UnknownAtomicLevelError struct {
	Level     string
	Framework string
}

// Error implements the error interface.
func (e *UnknownAtomicLevelError) Error() string {
	levels := AtomicLevels(e.Framework)
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l)
	}
	return fmt.Sprintf("unknown atomic level %q: must be one of: %s", e.Level, strings.Join(names, ", "))
}

// Unwrap returns ErrUnknownType for errors.Is support.
func (e *UnknownAtomicLevelError) Unwrap() error {
	return ErrUnknownType
}

// FrameworkUnsupportedError reports a resource type the configured
// framework cannot host.
type FrameworkUnsupportedError struct {
	Type      ResourceType
	Framework string
}

// Error implements the error interface.
func (e *FrameworkUnsupportedError) Error() string {
	return fmt.Sprintf("%s resources require the nextjs framework (project is configured for %s)", e.Type, e.Framework)
}

// Unwrap returns ErrUnsupportedCombination for errors.Is support.
func (e *FrameworkUnsupportedError) Unwrap() error {
	return ErrUnsupportedCombination
}
