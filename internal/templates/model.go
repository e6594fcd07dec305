package templates

import "time"

// Template is an opaque handle clients pick from when generating documents.
// Resolving a handle to an actual document template is the renderer's job;
// this catalog only exists so the UI has something to list.
type Template struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Defaults returns the built-in template handles seeded at startup.
func Defaults() []Template {
	now := time.Now().UTC()
	return []Template{
		{ID: "modern", Name: "Modern", Description: "Single-column ATS-friendly layout", CreatedAt: now},
		{ID: "classic", Name: "Classic", Description: "Traditional serif layout", CreatedAt: now},
	}
}
