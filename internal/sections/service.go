package sections

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResumeChecker reports whether a resume exists. Wired to the resumes
// repository in bootstrap.
type ResumeChecker interface {
	Exists(ctx context.Context, resumeID string) (bool, error)
}

// CreateInput carries the fields for creating a section. A nil Order appends
// the section at the end.
type CreateInput struct {
	Title    string
	Markdown string
	Order    *int
}

// UpdateInput carries the fields for updating a section's content.
type UpdateInput struct {
	Title    string
	Markdown string
}

// Service contains business logic for sections and their edit history.
type Service struct {
	Repo    Repo
	Resumes ResumeChecker
}

// NewService constructs a Service.
func NewService(repo Repo, resumes ResumeChecker) *Service {
	return &Service{Repo: repo, Resumes: resumes}
}

// Create attaches a new section to the resume and records version 1 of its
// history in the same step.
func (s *Service) Create(ctx context.Context, resumeID string, in CreateInput) (Section, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Section{}, ErrNotFound
	}
	exists, err := s.Resumes.Exists(ctx, resumeID)
	if err != nil {
		return Section{}, err
	}
	if !exists {
		return Section{}, fmt.Errorf("%w: resume %s", ErrNotFound, resumeID)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Section{}, fmt.Errorf("%w: section title must not be blank", ErrInvalidInput)
	}
	markdown := strings.TrimSpace(in.Markdown)

	order := 0
	if in.Order != nil {
		order = *in.Order
	} else {
		order, err = s.nextOrder(ctx, resumeID)
		if err != nil {
			return Section{}, err
		}
	}

	now := time.Now().UTC()
	section := Section{
		ID:        uuid.NewString(),
		ResumeID:  resumeID,
		Title:     title,
		Markdown:  markdown,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	version := Version{
		ID:        uuid.NewString(),
		Markdown:  markdown,
		CreatedAt: now,
	}
	if _, err := s.Repo.CreateWithVersion(ctx, section, version); err != nil {
		return Section{}, err
	}
	return section, nil
}

// Update rewrites the section's title and markdown and appends a new history
// entry carrying the new markdown. Existing history is never edited.
func (s *Service) Update(ctx context.Context, sectionID string, in UpdateInput) (Section, error) {
	section, err := s.Repo.GetByID(ctx, sectionID)
	if err != nil {
		return Section{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Section{}, fmt.Errorf("%w: section title must not be blank", ErrInvalidInput)
	}
	markdown := strings.TrimSpace(in.Markdown)

	now := time.Now().UTC()
	section.Title = title
	section.Markdown = markdown
	section.UpdatedAt = now

	version := Version{
		ID:        uuid.NewString(),
		Markdown:  markdown,
		CreatedAt: now,
	}
	if _, err := s.Repo.UpdateWithVersion(ctx, section, version); err != nil {
		return Section{}, err
	}
	return section, nil
}

// Reorder assigns order i+1 to the i-th id in orderedIDs. Ids that do not
// belong to the resume are silently skipped; sections of the resume not
// mentioned keep their prior order.
func (s *Service) Reorder(ctx context.Context, resumeID string, orderedIDs []string) error {
	if strings.TrimSpace(resumeID) == "" || len(orderedIDs) == 0 {
		return nil
	}
	for i, sectionID := range orderedIDs {
		if _, err := s.Repo.UpdateOrder(ctx, resumeID, sectionID, i+1, time.Now().UTC()); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a section and its history. Reports whether it existed.
func (s *Service) Delete(ctx context.Context, sectionID string) (bool, error) {
	if strings.TrimSpace(sectionID) == "" {
		return false, nil
	}
	return s.Repo.Delete(ctx, sectionID)
}

// GetByID returns a section by ID.
func (s *Service) GetByID(ctx context.Context, sectionID string) (Section, error) {
	return s.Repo.GetByID(ctx, sectionID)
}

// ListByResume returns the resume's sections ascending by display order.
func (s *Service) ListByResume(ctx context.Context, resumeID string) ([]Section, error) {
	if strings.TrimSpace(resumeID) == "" {
		return []Section{}, nil
	}
	return s.Repo.ListByResume(ctx, resumeID)
}

// ListHistory returns the section's versions, newest first.
func (s *Service) ListHistory(ctx context.Context, sectionID string) ([]Version, error) {
	if strings.TrimSpace(sectionID) == "" {
		return []Version{}, nil
	}
	return s.Repo.ListHistory(ctx, sectionID)
}

// Restore copies the markdown of an earlier version onto the section and
// appends a new version with the same content at latest+1. Forward history is
// kept intact.
func (s *Service) Restore(ctx context.Context, sectionID, versionID string) (Section, error) {
	version, err := s.Repo.GetVersion(ctx, versionID)
	if err != nil {
		return Section{}, err
	}
	if version.SectionID != sectionID {
		return Section{}, fmt.Errorf("%w: version %s does not belong to section %s", ErrNotFound, versionID, sectionID)
	}

	section, err := s.Repo.GetByID(ctx, sectionID)
	if err != nil {
		return Section{}, err
	}

	now := time.Now().UTC()
	section.Markdown = version.Markdown
	section.UpdatedAt = now

	restored := Version{
		ID:        uuid.NewString(),
		Markdown:  version.Markdown,
		CreatedAt: now,
	}
	if _, err := s.Repo.UpdateWithVersion(ctx, section, restored); err != nil {
		return Section{}, err
	}
	return section, nil
}

func (s *Service) nextOrder(ctx context.Context, resumeID string) (int, error) {
	existing, err := s.Repo.ListByResume(ctx, resumeID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, section := range existing {
		if section.Order > max {
			max = section.Order
		}
	}
	return max + 1, nil
}
