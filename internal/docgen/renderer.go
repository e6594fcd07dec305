package docgen

import "context"

// Renderer turns a template reference and markdown into DOCX bytes. A failed
// render is terminal for the request; callers never retry.
type Renderer interface {
	Render(ctx context.Context, templateID, markdown string) ([]byte, error)
}
