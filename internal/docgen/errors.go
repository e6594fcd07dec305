package docgen

import "errors"

var (
	// ErrNotFound indicates the referenced resume or version does not exist,
	// or the version belongs to a different resume.
	ErrNotFound = errors.New("not found")

	// ErrRenderUnavailable indicates the renderer could not be reached or
	// returned a failure. Distinct from ErrNotFound so callers can retry.
	ErrRenderUnavailable = errors.New("renderer unavailable")
)
