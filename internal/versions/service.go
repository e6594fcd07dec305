package versions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-portal/internal/shared/metrics"
)

// ResumeRecord is the slice of a resume the snapshot service needs.
type ResumeRecord struct {
	ID         string
	TemplateID string
}

// ResumeSource resolves resumes; wired to the resumes repository in bootstrap.
// Implementations return ErrNotFound (of this package) for unknown ids.
type ResumeSource interface {
	GetRecord(ctx context.Context, resumeID string) (ResumeRecord, error)
}

// MarkdownSource derives the effective markdown for a resume.
type MarkdownSource interface {
	Assemble(ctx context.Context, resumeID string) (string, error)
}

// CreateInput carries optional overrides for a snapshot; blank fields fall
// back to the resume's current assembled content and template.
type CreateInput struct {
	Label      string
	Markdown   string
	TemplateID string
}

// Service contains business logic for resume version snapshots.
type Service struct {
	Repo      Repo
	Resumes   ResumeSource
	Assembler MarkdownSource
}

// NewService constructs a Service.
func NewService(repo Repo, resumes ResumeSource, assembler MarkdownSource) *Service {
	return &Service{Repo: repo, Resumes: resumes, Assembler: assembler}
}

// Create snapshots the resume's effective content. Caller-supplied markdown
// and template win when non-blank; otherwise the current assembled markdown
// and the resume's template are frozen into the snapshot.
func (s *Service) Create(ctx context.Context, resumeID string, in CreateInput) (ResumeVersion, error) {
	resume, err := s.Resumes.GetRecord(ctx, resumeID)
	if err != nil {
		return ResumeVersion{}, err
	}

	markdown := strings.TrimSpace(in.Markdown)
	if markdown == "" {
		markdown, err = s.Assembler.Assemble(ctx, resumeID)
		if err != nil {
			return ResumeVersion{}, err
		}
	}

	templateID := strings.TrimSpace(in.TemplateID)
	if templateID == "" {
		templateID = resume.TemplateID
	}

	version := ResumeVersion{
		ID:         uuid.NewString(),
		ResumeID:   resumeID,
		Label:      strings.TrimSpace(in.Label),
		Markdown:   markdown,
		TemplateID: templateID,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.Repo.Create(ctx, version)
	if err != nil {
		return ResumeVersion{}, err
	}
	metrics.IncVersionCreated()
	return created, nil
}

// GetByID returns a snapshot by ID.
func (s *Service) GetByID(ctx context.Context, versionID string) (ResumeVersion, error) {
	if strings.TrimSpace(versionID) == "" {
		return ResumeVersion{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, versionID)
}

// ListByResume returns the resume's snapshots ascending by version number.
// Returns ErrNotFound if the resume does not exist.
func (s *Service) ListByResume(ctx context.Context, resumeID string) ([]ResumeVersion, error) {
	if _, err := s.Resumes.GetRecord(ctx, resumeID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID)
}
