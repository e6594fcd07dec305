package documents

import (
	"context"
	"errors"
	"strings"
)

// ResumeChecker reports whether a resume exists; wired to the resumes
// repository in bootstrap.
type ResumeChecker interface {
	Exists(ctx context.Context, resumeID string) (bool, error)
}

// Service exposes read access to generated documents.
type Service struct {
	Repo    Repo
	Resumes ResumeChecker
}

// NewService constructs a Service.
func NewService(repo Repo, resumes ResumeChecker) *Service {
	return &Service{Repo: repo, Resumes: resumes}
}

// ListByResume returns the resume's documents, newest first. Returns
// ErrNotFound when the resume does not exist.
func (s *Service) ListByResume(ctx context.Context, resumeID string) ([]GeneratedDocument, error) {
	ok, err := s.Resumes.Exists(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.Repo.FindByResumeID(ctx, resumeID)
}

// Download returns a document and its bytes after checking that the document
// belongs to the given resume. A document reached through the wrong resume is
// treated as absent.
func (s *Service) Download(ctx context.Context, resumeID, documentID string) (GeneratedDocument, []byte, error) {
	if strings.TrimSpace(documentID) == "" {
		return GeneratedDocument{}, nil, ErrNotFound
	}
	doc, err := s.Repo.FindByID(ctx, documentID)
	if err != nil {
		return GeneratedDocument{}, nil, err
	}
	if doc.ResumeID != resumeID {
		return GeneratedDocument{}, nil, ErrNotFound
	}
	content, err := s.Repo.GetContent(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return GeneratedDocument{}, nil, ErrNotFound
		}
		return GeneratedDocument{}, nil, err
	}
	return doc, content, nil
}
