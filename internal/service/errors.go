package service

import (
	"errors"
	"fmt"
)

// Sentinel errors translated to HTTP statuses at the handler boundary
var (
	// ErrUnauthenticated means no caller identity was supplied
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the caller's role or ownership does not
	// permit the operation
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the addressed entity does not exist
	ErrNotFound = errors.New("not found")
)

// ConflictError reports a duplicate slug within a resource type
type ConflictError struct {
	Message string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

func slugConflict(resource string) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf("A %s with this slug already exists", resource)}
}
