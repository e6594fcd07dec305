package templates

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultsAreListed(t *testing.T) {
	svc := NewService(NewMemoryRepo(Defaults()...))

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 seeded templates, got %d", len(listed))
	}

	modern, err := svc.GetByID(context.Background(), "modern")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if modern.Name != "Modern" {
		t.Fatalf("unexpected template: %+v", modern)
	}
}

func TestCreateValidatesName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Create(context.Background(), CreateInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	created, err := svc.Create(context.Background(), CreateInput{Name: " Minimal ", Description: " plain "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Minimal" || created.Description != "plain" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
