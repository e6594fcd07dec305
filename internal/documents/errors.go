package documents

import "errors"

var (
	// ErrNotFound indicates a document or resume was not found.
	ErrNotFound = errors.New("not found")
)
