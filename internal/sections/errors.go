package sections

import "errors"

var (
	// ErrNotFound indicates a resume, section, or section version was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
