package resumes

import (
	"context"
	"errors"
	"strings"
)

// SectionContent is the slice of a section the assembler needs: title and
// body, already in display order.
type SectionContent struct {
	Title    string
	Markdown string
}

// SectionSource lists section content for a resume ordered by display order.
type SectionSource interface {
	ListContentByResume(ctx context.Context, resumeID string) ([]SectionContent, error)
}

// Assembler derives the effective markdown for a resume: from its ordered
// sections if any exist, otherwise from the resume's flat markdown field.
// The result is recomputed on every call; callers needing a frozen copy must
// snapshot it into a resume version.
type Assembler struct {
	Resumes  Repo
	Sections SectionSource
}

// Assemble returns the full markdown for the resume. An unknown resume id
// yields an empty string, not an error.
func (a *Assembler) Assemble(ctx context.Context, resumeID string) (string, error) {
	if strings.TrimSpace(resumeID) == "" {
		return "", nil
	}

	sections, err := a.Sections.ListContentByResume(ctx, resumeID)
	if err != nil {
		return "", err
	}
	if len(sections) > 0 {
		parts := make([]string, 0, len(sections))
		for _, section := range sections {
			parts = append(parts, sectionToMarkdown(section))
		}
		return strings.Join(parts, "\n\n"), nil
	}

	resume, err := a.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return resume.Markdown, nil
}

func sectionToMarkdown(section SectionContent) string {
	title := strings.TrimSpace(section.Title)
	body := strings.TrimSpace(section.Markdown)
	if title == "" {
		return body
	}
	if body == "" {
		return "## " + title
	}
	return "## " + title + "\n\n" + body
}
