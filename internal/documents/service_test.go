package documents

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubResumes struct {
	known map[string]bool
}

func (s stubResumes) Exists(ctx context.Context, resumeID string) (bool, error) {
	return s.known[resumeID], nil
}

func seedDocument(t *testing.T, repo *MemoryRepo, id, resumeID string, generatedAt time.Time) GeneratedDocument {
	t.Helper()
	doc := GeneratedDocument{
		ID:          id,
		ResumeID:    resumeID,
		ContentType: DocxContentType,
		SizeBytes:   4,
		GeneratedAt: generatedAt,
	}
	if err := repo.Save(context.Background(), doc, []byte("docx")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return doc
}

func TestListByResumeNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, stubResumes{known: map[string]bool{"resume-1": true}})
	ctx := context.Background()

	base := time.Now().UTC()
	seedDocument(t, repo, "doc-old", "resume-1", base.Add(-2*time.Minute))
	seedDocument(t, repo, "doc-new", "resume-1", base)
	seedDocument(t, repo, "doc-mid", "resume-1", base.Add(-time.Minute))
	seedDocument(t, repo, "doc-other", "resume-2", base)

	listed, err := svc.ListByResume(ctx, "resume-1")
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(listed))
	}
	want := []string{"doc-new", "doc-mid", "doc-old"}
	for i, doc := range listed {
		if doc.ID != want[i] {
			t.Fatalf("expected %s at index %d, got %s", want[i], i, doc.ID)
		}
	}
}

func TestListByResumeUnknownResume(t *testing.T) {
	svc := NewService(NewMemoryRepo(), stubResumes{known: map[string]bool{}})
	if _, err := svc.ListByResume(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDownloadChecksOwnership(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, stubResumes{known: map[string]bool{"resume-1": true, "resume-2": true}})
	ctx := context.Background()

	doc := seedDocument(t, repo, "doc-1", "resume-1", time.Now().UTC())

	got, content, err := svc.Download(ctx, "resume-1", doc.ID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if got.ID != doc.ID || string(content) != "docx" {
		t.Fatalf("unexpected download result: %+v %q", got, content)
	}

	// Reaching a document through the wrong resume reads as absent.
	if _, _, err := svc.Download(ctx, "resume-2", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := svc.Download(ctx, "resume-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoCopiesContent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	payload := []byte("docx")
	doc := GeneratedDocument{ID: "doc-1", ResumeID: "resume-1", GeneratedAt: time.Now().UTC()}
	if err := repo.Save(ctx, doc, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}
	payload[0] = 'X'

	stored, err := repo.GetContent(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	if string(stored) != "docx" {
		t.Fatalf("stored content aliased caller buffer: %q", stored)
	}
}
