package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minTitleLength = 3

// CreateInput carries the fields for creating a resume.
type CreateInput struct {
	Title         string
	TargetRole    string
	TargetCompany string
	TemplateID    string
	Markdown      string
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Title         *string
	TargetRole    *string
	TargetCompany *string
	TemplateID    *string
	Markdown      *string
}

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates the input and stores a new draft resume.
func (s *Service) Create(ctx context.Context, in CreateInput) (Resume, error) {
	title := strings.TrimSpace(in.Title)
	markdown := strings.TrimSpace(in.Markdown)

	if len(title) < minTitleLength {
		return Resume{}, fmt.Errorf("%w: title must be at least %d characters", ErrInvalidInput, minTitleLength)
	}
	if markdown == "" {
		return Resume{}, fmt.Errorf("%w: markdown must not be blank", ErrInvalidInput)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:            uuid.NewString(),
		Status:        StatusDraft,
		Title:         title,
		TargetRole:    strings.TrimSpace(in.TargetRole),
		TargetCompany: strings.TrimSpace(in.TargetCompany),
		TemplateID:    strings.TrimSpace(in.TemplateID),
		Markdown:      markdown,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// GetByID returns a resume by ID.
func (s *Service) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, resumeID)
}

// List returns all resumes.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Update applies a partial update to an existing resume.
func (s *Service) Update(ctx context.Context, resumeID string, in UpdateInput) (Resume, error) {
	resume, err := s.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if len(title) < minTitleLength {
			return Resume{}, fmt.Errorf("%w: title must be at least %d characters", ErrInvalidInput, minTitleLength)
		}
		resume.Title = title
	}
	if in.TargetRole != nil {
		resume.TargetRole = strings.TrimSpace(*in.TargetRole)
	}
	if in.TargetCompany != nil {
		resume.TargetCompany = strings.TrimSpace(*in.TargetCompany)
	}
	if in.TemplateID != nil {
		resume.TemplateID = strings.TrimSpace(*in.TemplateID)
	}
	if in.Markdown != nil {
		markdown := strings.TrimSpace(*in.Markdown)
		if markdown == "" {
			return Resume{}, fmt.Errorf("%w: markdown must not be blank", ErrInvalidInput)
		}
		resume.Markdown = markdown
	}

	resume.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}
