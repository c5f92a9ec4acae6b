package engine

import "errors"

var (
	// ErrTableNotFound is returned when a frame is requested for a name that
	// was never registered.
	ErrTableNotFound = errors.New("table not found")

	// ErrTableExists is returned when a name is registered twice.
	ErrTableExists = errors.New("table already exists")

	// ErrTypeMismatch is returned when a literal cannot be compared with the
	// column it is matched against.
	ErrTypeMismatch = errors.New("cannot compare")

	// ErrInvalidLimit is returned for a negative skip or fetch.
	ErrInvalidLimit = errors.New("invalid limit")
)
