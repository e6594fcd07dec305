package versions

import (
	"context"
	"errors"
	"testing"
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

type stubAssembler struct {
	markdown *string
}

func (s stubAssembler) Assemble(ctx context.Context, resumeID string) (string, error) {
	return *s.markdown, nil
}

func newTestService(markdown *string) *Service {
	resumes := stubResumes{records: map[string]ResumeRecord{
		"resume-1": {ID: "resume-1", TemplateID: "t1"},
	}}
	return NewService(NewMemoryRepo(), resumes, stubAssembler{markdown: markdown})
}

func TestCreateSnapshotsAssembledContent(t *testing.T) {
	markdown := "# One"
	svc := newTestService(&markdown)
	ctx := context.Background()

	first, err := svc.Create(ctx, "resume-1", CreateInput{Label: "  before edits  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Markdown != "# One" {
		t.Fatalf("expected assembled markdown, got %q", first.Markdown)
	}
	if first.TemplateID != "t1" {
		t.Fatalf("expected resume template, got %q", first.TemplateID)
	}
	if first.Label != "before edits" {
		t.Fatalf("expected trimmed label, got %q", first.Label)
	}
	if first.VersionNo != 1 {
		t.Fatalf("expected version 1, got %d", first.VersionNo)
	}

	// Later edits must not leak into the stored snapshot.
	markdown = "# Two"
	stored, err := svc.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Markdown != "# One" {
		t.Fatalf("snapshot mutated: %q", stored.Markdown)
	}

	second, err := svc.Create(ctx, "resume-1", CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.VersionNo != 2 {
		t.Fatalf("expected version 2, got %d", second.VersionNo)
	}
	if second.Markdown != "# Two" {
		t.Fatalf("expected fresh assembled markdown, got %q", second.Markdown)
	}
}

func TestCreateHonorsExplicitOverrides(t *testing.T) {
	markdown := "# Assembled"
	svc := newTestService(&markdown)

	created, err := svc.Create(context.Background(), "resume-1", CreateInput{
		Markdown:   "# Explicit",
		TemplateID: "custom",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Markdown != "# Explicit" {
		t.Fatalf("expected explicit markdown, got %q", created.Markdown)
	}
	if created.TemplateID != "custom" {
		t.Fatalf("expected explicit template, got %q", created.TemplateID)
	}
}

func TestCreateUnknownResume(t *testing.T) {
	markdown := ""
	svc := newTestService(&markdown)
	if _, err := svc.Create(context.Background(), "missing", CreateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByResume(t *testing.T) {
	markdown := "# Hello"
	svc := newTestService(&markdown)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, "resume-1", CreateInput{}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	listed, err := svc.ListByResume(ctx, "resume-1")
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(listed))
	}
	for i, version := range listed {
		if version.VersionNo != i+1 {
			t.Fatalf("expected ascending numbering, got %d at index %d", version.VersionNo, i)
		}
	}

	if _, err := svc.ListByResume(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
