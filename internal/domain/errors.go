package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced node ID is absent from the forest.
	ErrNotFound = errors.New("not found")

	// ErrProtectedRoot indicates an attempt to delete the protected root node.
	ErrProtectedRoot = errors.New("protected root cannot be deleted")
)

// NotFoundError reports which identifier could not be resolved.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ProtectedRootError is returned when deleting the node guarded by the
// store's root policy.
type ProtectedRootError struct {
	ID string
}

func (e *ProtectedRootError) Error() string {
	return fmt.Sprintf("node %s is the protected root and cannot be deleted", e.ID)
}

func (e *ProtectedRootError) Unwrap() error { return ErrProtectedRoot }

// IsNotFound reports whether err is a NotFoundError or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
