package templates

import "errors"

var (
	// ErrNotFound indicates the template does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a validation failure.
	ErrInvalidInput = errors.New("invalid input")
)
