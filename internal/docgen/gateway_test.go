package docgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGatewayRenderSendsWireContract(t *testing.T) {
	var got renderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte("docx-bytes"))
	}))
	t.Cleanup(srv.Close)

	gateway := NewGateway(srv.URL, 5*time.Second)
	content, err := gateway.Render(context.Background(), "modern", "# Hello")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(content) != "docx-bytes" {
		t.Fatalf("unexpected content %q", content)
	}
	if got.TemplateID != "modern" || got.FileType != "DOCX" || got.CVMarkdown != "# Hello" {
		t.Fatalf("unexpected wire request: %+v", got)
	}
}

func TestGatewayRenderFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gateway := NewGateway(srv.URL, 5*time.Second)
	if _, err := gateway.Render(context.Background(), "modern", "# Hello"); !errors.Is(err, ErrRenderUnavailable) {
		t.Fatalf("expected ErrRenderUnavailable, got %v", err)
	}
}

func TestGatewayRenderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gateway := NewGateway(srv.URL, time.Second)
	if _, err := gateway.Render(context.Background(), "modern", "# Hello"); !errors.Is(err, ErrRenderUnavailable) {
		t.Fatalf("expected ErrRenderUnavailable, got %v", err)
	}
}

func TestGatewayRenderEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	gateway := NewGateway(srv.URL, time.Second)
	if _, err := gateway.Render(context.Background(), "modern", "# Hello"); !errors.Is(err, ErrRenderUnavailable) {
		t.Fatalf("expected ErrRenderUnavailable, got %v", err)
	}
}
