package versions

import "time"

// VersionResponse is the outward-facing representation of a resume version.
type VersionResponse struct {
	ID         string    `json:"id"`
	ResumeID   string    `json:"resumeId"`
	VersionNo  int       `json:"versionNo"`
	Label      string    `json:"label,omitempty"`
	Markdown   string    `json:"markdown"`
	TemplateID string    `json:"templateId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(version ResumeVersion) VersionResponse {
	return VersionResponse{
		ID:         version.ID,
		ResumeID:   version.ResumeID,
		VersionNo:  version.VersionNo,
		Label:      version.Label,
		Markdown:   version.Markdown,
		TemplateID: version.TemplateID,
		CreatedAt:  version.CreatedAt,
	}
}
