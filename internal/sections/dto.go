package sections

import "time"

// SectionResponse is the outward-facing representation of a section.
type SectionResponse struct {
	ID        string    `json:"id"`
	ResumeID  string    `json:"resumeId"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VersionResponse is the outward-facing representation of a section version.
type VersionResponse struct {
	ID        string    `json:"id"`
	SectionID string    `json:"sectionId"`
	VersionNo int       `json:"versionNo"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(section Section) SectionResponse {
	return SectionResponse{
		ID:        section.ID,
		ResumeID:  section.ResumeID,
		Title:     section.Title,
		Markdown:  section.Markdown,
		Order:     section.Order,
		CreatedAt: section.CreatedAt,
		UpdatedAt: section.UpdatedAt,
	}
}

func toVersionResponse(version Version) VersionResponse {
	return VersionResponse{
		ID:        version.ID,
		SectionID: version.SectionID,
		VersionNo: version.VersionNo,
		Markdown:  version.Markdown,
		CreatedAt: version.CreatedAt,
	}
}
