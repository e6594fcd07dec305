package sections

import "time"

// Section is a named, ordered chunk of a resume's content.
type Section struct {
	ID        string
	ResumeID  string
	Title     string
	Markdown  string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Version is an append-only snapshot of a section's content. Version numbers
// start at 1 and increase by exactly one per append, scoped to the section.
type Version struct {
	ID        string
	SectionID string
	VersionNo int
	Markdown  string
	CreatedAt time.Time
}
