package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	Title         string    `json:"title"`
	TargetRole    string    `json:"targetRole,omitempty"`
	TargetCompany string    `json:"targetCompany,omitempty"`
	TemplateID    string    `json:"templateId,omitempty"`
	Markdown      string    `json:"markdown"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ID:            resume.ID,
		Status:        string(resume.Status),
		Title:         resume.Title,
		TargetRole:    resume.TargetRole,
		TargetCompany: resume.TargetCompany,
		TemplateID:    resume.TemplateID,
		Markdown:      resume.Markdown,
		CreatedAt:     resume.CreatedAt,
		UpdatedAt:     resume.UpdatedAt,
	}
}
