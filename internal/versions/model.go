package versions

import "time"

// ResumeVersion is an immutable, optionally labeled snapshot of a resume's
// assembled content and template reference at a point in time.
type ResumeVersion struct {
	ID         string
	ResumeID   string
	VersionNo  int
	Label      string
	Markdown   string
	TemplateID string
	CreatedAt  time.Time
}
