package docgen

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalRendererProducesReadableDocx(t *testing.T) {
	content, err := LocalRenderer{}.Render(context.Background(), "modern", "## Profile\n\nBio & more")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}

	var document string
	names := map[string]bool{}
	for _, file := range reader.File {
		names[file.Name] = true
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		document = string(raw)
	}

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !names[name] {
			t.Fatalf("missing zip entry %s", name)
		}
	}
	if !strings.Contains(document, "Profile") {
		t.Fatalf("heading text missing from document: %s", document)
	}
	if !strings.Contains(document, "Bio &amp; more") {
		t.Fatalf("body text must be XML-escaped: %s", document)
	}
	if !strings.Contains(document, "<w:b/>") {
		t.Fatalf("heading must be bold: %s", document)
	}
}
