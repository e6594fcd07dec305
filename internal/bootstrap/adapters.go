package bootstrap

import (
	"context"
	"errors"

	"resume-portal/internal/docgen"
	"resume-portal/internal/resumes"
	"resume-portal/internal/sections"
	"resume-portal/internal/versions"
)

// resumeChecker reports resume existence for packages that only need to
// validate a parent reference. Satisfies sections.ResumeChecker and
// documents.ResumeChecker.
type resumeChecker struct {
	repo resumes.Repo
}

func (a resumeChecker) Exists(ctx context.Context, resumeID string) (bool, error) {
	_, err := a.repo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// sectionContentSource feeds section content to the markdown assembler.
type sectionContentSource struct {
	repo sections.Repo
}

func (a sectionContentSource) ListContentByResume(ctx context.Context, resumeID string) ([]resumes.SectionContent, error) {
	all, err := a.repo.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	out := make([]resumes.SectionContent, 0, len(all))
	for _, section := range all {
		out = append(out, resumes.SectionContent{
			Title:    section.Title,
			Markdown: section.Markdown,
		})
	}
	return out, nil
}

// versionResumeSource resolves resumes for the snapshot service, translating
// the error to that package's sentinel.
type versionResumeSource struct {
	repo resumes.Repo
}

func (a versionResumeSource) GetRecord(ctx context.Context, resumeID string) (versions.ResumeRecord, error) {
	resume, err := a.repo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return versions.ResumeRecord{}, versions.ErrNotFound
		}
		return versions.ResumeRecord{}, err
	}
	return versions.ResumeRecord{ID: resume.ID, TemplateID: resume.TemplateID}, nil
}

// docgenResumeSource resolves resumes for the generation orchestrator.
type docgenResumeSource struct {
	repo resumes.Repo
}

func (a docgenResumeSource) GetRecord(ctx context.Context, resumeID string) (docgen.ResumeRecord, error) {
	resume, err := a.repo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return docgen.ResumeRecord{}, docgen.ErrNotFound
		}
		return docgen.ResumeRecord{}, err
	}
	return docgen.ResumeRecord{ID: resume.ID, TemplateID: resume.TemplateID}, nil
}

// docgenVersionSource resolves snapshots for the generation orchestrator.
type docgenVersionSource struct {
	repo versions.Repo
}

func (a docgenVersionSource) GetRecord(ctx context.Context, versionID string) (docgen.VersionRecord, error) {
	version, err := a.repo.GetByID(ctx, versionID)
	if err != nil {
		if errors.Is(err, versions.ErrNotFound) {
			return docgen.VersionRecord{}, docgen.ErrNotFound
		}
		return docgen.VersionRecord{}, err
	}
	return docgen.VersionRecord{
		ID:         version.ID,
		ResumeID:   version.ResumeID,
		TemplateID: version.TemplateID,
		Markdown:   version.Markdown,
	}, nil
}
