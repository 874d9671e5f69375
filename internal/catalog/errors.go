package catalog

import "errors"

var (
	// ErrNotFound indicates the requested entity doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConstraint indicates a foreign key or check constraint violation
	// reported by the driver. Validation normally rejects bad writes first;
	// this covers writes that reach SQLite anyway.
	ErrConstraint = errors.New("constraint violation")
)
