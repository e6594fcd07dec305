package resumes

import (
	"context"
	"testing"
)

type stubSections struct {
	content []SectionContent
}

func (s stubSections) ListContentByResume(ctx context.Context, resumeID string) ([]SectionContent, error) {
	return s.content, nil
}

func TestAssembleFallsBackToFlatMarkdown(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "Flat", Markdown: "  # Hello\n"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	assembler := &Assembler{Resumes: repo, Sections: stubSections{}}
	got, err := assembler.Assemble(ctx, created.ID)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "# Hello" {
		t.Fatalf("expected trimmed flat markdown, got %q", got)
	}
}

func TestAssembleJoinsSections(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "Sectioned", Markdown: "# ignored"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	assembler := &Assembler{
		Resumes: repo,
		Sections: stubSections{content: []SectionContent{
			{Title: "Profile", Markdown: "Bio"},
			{Title: "Skills", Markdown: ""},
		}},
	}
	got, err := assembler.Assemble(ctx, created.ID)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := "## Profile\n\nBio\n\n## Skills"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAssembleUntitledSectionIsBodyOnly(t *testing.T) {
	assembler := &Assembler{
		Resumes: NewMemoryRepo(),
		Sections: stubSections{content: []SectionContent{
			{Title: "  ", Markdown: "Raw body"},
		}},
	}
	got, err := assembler.Assemble(context.Background(), "any")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "Raw body" {
		t.Fatalf("expected body without heading, got %q", got)
	}
}

func TestAssembleUnknownResumeIsEmpty(t *testing.T) {
	assembler := &Assembler{Resumes: NewMemoryRepo(), Sections: stubSections{}}
	got, err := assembler.Assemble(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty markdown, got %q", got)
	}
}
