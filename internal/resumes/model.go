package resumes

import "time"

// Status is the lifecycle state of a resume. Only DRAFT is assigned today;
// the type leaves room for FINAL and ARCHIVED.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusFinal    Status = "FINAL"
	StatusArchived Status = "ARCHIVED"
)

// Resume is the top-level document entity. Content is either the flat
// Markdown field or assembled from the resume's ordered sections.
type Resume struct {
	ID            string
	Status        Status
	Title         string
	TargetRole    string
	TargetCompany string
	TemplateID    string
	Markdown      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
