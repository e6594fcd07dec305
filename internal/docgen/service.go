package docgen

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-portal/internal/documents"
	"resume-portal/internal/shared/metrics"
	"resume-portal/internal/shared/telemetry"
)

// ResumeRecord is the slice of a resume the orchestrator needs.
type ResumeRecord struct {
	ID         string
	TemplateID string
}

// ResumeSource resolves resumes; wired to the resumes repository in bootstrap.
// Implementations return ErrNotFound (of this package) for unknown ids.
type ResumeSource interface {
	GetRecord(ctx context.Context, resumeID string) (ResumeRecord, error)
}

// VersionRecord is the slice of a resume version the orchestrator needs.
type VersionRecord struct {
	ID         string
	ResumeID   string
	TemplateID string
	Markdown   string
}

// VersionSource resolves resume version snapshots.
type VersionSource interface {
	GetRecord(ctx context.Context, versionID string) (VersionRecord, error)
}

// MarkdownSource derives the effective markdown for a resume.
type MarkdownSource interface {
	Assemble(ctx context.Context, resumeID string) (string, error)
}

// DocumentSink persists the rendered artifact.
type DocumentSink interface {
	Save(ctx context.Context, doc documents.GeneratedDocument, content []byte) error
}

// GenerateInput carries the optional overrides of a generation request.
type GenerateInput struct {
	VersionID  string
	TemplateID string
}

// GenerateResult identifies the stored artifact and where to fetch it.
type GenerateResult struct {
	DocumentID  string
	DownloadURL string
}

// Service orchestrates document generation: resolve content and template,
// render, persist.
type Service struct {
	Resumes   ResumeSource
	Versions  VersionSource
	Assembler MarkdownSource
	Renderer  Renderer
	Documents DocumentSink
}

// NewService constructs a Service.
func NewService(resumes ResumeSource, versions VersionSource, assembler MarkdownSource, renderer Renderer, sink DocumentSink) *Service {
	return &Service{Resumes: resumes, Versions: versions, Assembler: assembler, Renderer: renderer, Documents: sink}
}

// Generate renders one document for the resume. When a versionId is given the
// snapshot's frozen markdown and template are used; otherwise the live
// assembled content and the resume's template. A caller-supplied templateId
// wins over both. A version reached through the wrong resume is treated as
// absent. A failed render stores nothing.
func (s *Service) Generate(ctx context.Context, resumeID string, in GenerateInput) (GenerateResult, error) {
	versionID := strings.TrimSpace(in.VersionID)
	templateID := strings.TrimSpace(in.TemplateID)

	var markdown string
	if versionID != "" {
		version, err := s.Versions.GetRecord(ctx, versionID)
		if err != nil {
			return GenerateResult{}, err
		}
		if version.ResumeID != resumeID {
			return GenerateResult{}, ErrNotFound
		}
		markdown = version.Markdown
		if templateID == "" {
			templateID = version.TemplateID
		}
	} else {
		resume, err := s.Resumes.GetRecord(ctx, resumeID)
		if err != nil {
			return GenerateResult{}, err
		}
		markdown, err = s.Assembler.Assemble(ctx, resumeID)
		if err != nil {
			return GenerateResult{}, err
		}
		if templateID == "" {
			templateID = resume.TemplateID
		}
	}

	start := time.Now()
	content, err := s.Renderer.Render(ctx, templateID, markdown)
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncRenderFailed()
		if errors.Is(err, ErrRenderUnavailable) {
			return GenerateResult{}, err
		}
		return GenerateResult{}, errors.Join(ErrRenderUnavailable, err)
	}

	doc := documents.GeneratedDocument{
		ID:          uuid.NewString(),
		ResumeID:    resumeID,
		VersionID:   versionID,
		ContentType: documents.DocxContentType,
		SizeBytes:   int64(len(content)),
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.Documents.Save(ctx, doc, content); err != nil {
		return GenerateResult{}, err
	}
	metrics.IncDocumentGenerated()
	telemetry.Info("document generated", map[string]any{
		"resumeId":   resumeID,
		"documentId": doc.ID,
		"versionId":  versionID,
		"templateId": templateID,
		"sizeBytes":  doc.SizeBytes,
	})
	return GenerateResult{
		DocumentID:  doc.ID,
		DownloadURL: documents.DownloadURL(resumeID, doc.ID),
	}, nil
}
