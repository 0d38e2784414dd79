// Package scaffold performs the filesystem side of resource management:
// writing generated files, maintaining barrel files, renaming resources in
// place, and removing them. All paths are computed through internal/arch;
// this package only executes what the resolver decides.
package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for filesystem preconditions.
var (
	// ErrConflict indicates the target resource already exists.
	ErrConflict = errors.New("scaffold: resource already exists")

	// ErrNotFound indicates the target resource does not exist.
	ErrNotFound = errors.New("scaffold: resource not found")
)

// ConflictError reports an add or rename target that already exists.
type ConflictError struct {
	Path string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// Unwrap returns ErrConflict for errors.Is support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
