package docgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-portal/internal/documents"
)

type stubResumes struct {
	records map[string]ResumeRecord
}

func (s stubResumes) GetRecord(ctx context.Context, resumeID string) (ResumeRecord, error) {
	record, ok := s.records[resumeID]
	if !ok {
		return ResumeRecord{}, ErrNotFound
	}
	return record, nil
}

type stubVersions struct {
	records map[string]VersionRecord
}

func (s stubVersions) GetRecord(ctx context.Context, versionID string) (VersionRecord, error) {
	record, ok := s.records[versionID]
	if !ok {
		return VersionRecord{}, ErrNotFound
	}
	return record, nil
}

type stubAssembler struct {
	markdown string
}

func (s stubAssembler) Assemble(ctx context.Context, resumeID string) (string, error) {
	return s.markdown, nil
}

type recordingRenderer struct {
	templateID string
	markdown   string
	fail       bool
}

func (r *recordingRenderer) Render(ctx context.Context, templateID, markdown string) ([]byte, error) {
	r.templateID = templateID
	r.markdown = markdown
	if r.fail {
		return nil, ErrRenderUnavailable
	}
	return []byte("docx-bytes"), nil
}

type recordingSink struct {
	saved []documents.GeneratedDocument
}

func (s *recordingSink) Save(ctx context.Context, doc documents.GeneratedDocument, content []byte) error {
	s.saved = append(s.saved, doc)
	return nil
}

func newTestService(renderer *recordingRenderer, sink *recordingSink) *Service {
	resumes := stubResumes{records: map[string]ResumeRecord{
		"resume-1": {ID: "resume-1", TemplateID: "t1"},
		"resume-2": {ID: "resume-2", TemplateID: "t2"},
	}}
	versions := stubVersions{records: map[string]VersionRecord{
		"ver-1": {ID: "ver-1", ResumeID: "resume-1", TemplateID: "t-ver", Markdown: "# Version"},
	}}
	return NewService(resumes, versions, stubAssembler{markdown: "# Hello"}, renderer, sink)
}

func TestGenerateResolutionPrecedence(t *testing.T) {
	cases := []struct {
		name         string
		input        GenerateInput
		wantTemplate string
		wantMarkdown string
	}{
		{"live content with resume template", GenerateInput{}, "t1", "# Hello"},
		{"version content with version template", GenerateInput{VersionID: "ver-1"}, "t-ver", "# Version"},
		{"override beats resume template", GenerateInput{TemplateID: "override"}, "override", "# Hello"},
		{"override beats version template", GenerateInput{VersionID: "ver-1", TemplateID: "override"}, "override", "# Version"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			renderer := &recordingRenderer{}
			sink := &recordingSink{}
			svc := newTestService(renderer, sink)

			result, err := svc.Generate(context.Background(), "resume-1", tc.input)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if renderer.templateID != tc.wantTemplate {
				t.Fatalf("expected template %q, got %q", tc.wantTemplate, renderer.templateID)
			}
			if renderer.markdown != tc.wantMarkdown {
				t.Fatalf("expected markdown %q, got %q", tc.wantMarkdown, renderer.markdown)
			}
			if len(sink.saved) != 1 {
				t.Fatalf("expected 1 stored document, got %d", len(sink.saved))
			}
			doc := sink.saved[0]
			if doc.ResumeID != "resume-1" {
				t.Fatalf("expected resume-1, got %s", doc.ResumeID)
			}
			if doc.VersionID != strings.TrimSpace(tc.input.VersionID) {
				t.Fatalf("expected version id %q, got %q", tc.input.VersionID, doc.VersionID)
			}
			if result.DocumentID != doc.ID {
				t.Fatalf("result id %s does not match stored id %s", result.DocumentID, doc.ID)
			}
			wantURL := "/api/v1/resumes/resume-1/documents/" + doc.ID + "/download"
			if result.DownloadURL != wantURL {
				t.Fatalf("expected download url %q, got %q", wantURL, result.DownloadURL)
			}
		})
	}
}

func TestGenerateCrossResumeIsolation(t *testing.T) {
	renderer := &recordingRenderer{}
	sink := &recordingSink{}
	svc := newTestService(renderer, sink)

	_, err := svc.Generate(context.Background(), "resume-2", GenerateInput{VersionID: "ver-1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(sink.saved) != 0 {
		t.Fatalf("nothing must be stored, got %d", len(sink.saved))
	}
}

func TestGenerateUnknownResume(t *testing.T) {
	svc := newTestService(&recordingRenderer{}, &recordingSink{})
	if _, err := svc.Generate(context.Background(), "missing", GenerateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateRenderFailureStoresNothing(t *testing.T) {
	renderer := &recordingRenderer{fail: true}
	sink := &recordingSink{}
	svc := newTestService(renderer, sink)

	_, err := svc.Generate(context.Background(), "resume-1", GenerateInput{})
	if !errors.Is(err, ErrRenderUnavailable) {
		t.Fatalf("expected ErrRenderUnavailable, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("render failure must not look like a missing reference")
	}
	if len(sink.saved) != 0 {
		t.Fatalf("no partial document may be stored, got %d", len(sink.saved))
	}
}
