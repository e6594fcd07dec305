package templates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateInput describes a new template handle.
type CreateInput struct {
	Name        string
	Description string
}

// Service contains business logic for the template catalog.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create registers a new template handle.
func (s *Service) Create(ctx context.Context, in CreateInput) (Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Template{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	template := Template{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, template); err != nil {
		return Template{}, err
	}
	return template, nil
}

// GetByID returns a template by ID.
func (s *Service) GetByID(ctx context.Context, templateID string) (Template, error) {
	if strings.TrimSpace(templateID) == "" {
		return Template{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, templateID)
}

// List returns all templates.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.Repo.List(ctx)
}
