package resumes

import (
	"context"
	"errors"
	"testing"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"blank title", CreateInput{Title: "   ", Markdown: "# Hello"}},
		{"short title", CreateInput{Title: "ab", Markdown: "# Hello"}},
		{"blank markdown", CreateInput{Title: "My Resume", Markdown: "  \n "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateTrimsAndDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Title:      "  Backend Engineer  ",
		TargetRole: " SRE ",
		Markdown:   "  # Hello\n",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Backend Engineer" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.TargetRole != "SRE" {
		t.Fatalf("expected trimmed target role, got %q", created.TargetRole)
	}
	if created.Markdown != "# Hello" {
		t.Fatalf("expected trimmed markdown, got %q", created.Markdown)
	}
	if created.Status != StatusDraft {
		t.Fatalf("expected DRAFT status, got %q", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "Original", TemplateID: "t1", Markdown: "# One"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	role := "Platform Engineer"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{TargetRole: &role})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.TargetRole != role {
		t.Fatalf("expected target role %q, got %q", role, updated.TargetRole)
	}
	if updated.Title != "Original" || updated.TemplateID != "t1" || updated.Markdown != "# One" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	blank := "   "
	if _, err := svc.Update(ctx, created.ID, UpdateInput{Markdown: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank markdown, got %v", err)
	}
}

func TestUpdateUnknownResume(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	title := "New Title"
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
