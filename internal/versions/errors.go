package versions

import "errors"

var (
	// ErrNotFound indicates a resume or version was not found.
	ErrNotFound = errors.New("not found")
)
