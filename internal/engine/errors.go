package engine

import "errors"

var (
	// ErrNotTracked indicates an operation referenced a component that is
	// not tracked in the workspace.
	ErrNotTracked = errors.New("component not tracked")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyComponent indicates a publish captured no files.
	ErrEmptyComponent = errors.New("component has no files")
)
