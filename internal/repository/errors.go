package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a schema-level name uniqueness
	// constraint fails. Services map it to the same violation message the
	// validators produce, so a race that slips past validation surfaces
	// identically.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrForeignKeyViolation is returned when a foreign key constraint
	// fails
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
