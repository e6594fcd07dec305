package docgen

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
)

// LocalRenderer builds a plain DOCX from markdown without calling out to the
// generator service. It is a development fallback; heading lines become bold
// paragraphs and everything else becomes body text. The template reference is
// accepted but ignored since there is no template catalog locally.
type LocalRenderer struct{}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `</w:body></w:document>`

// Render produces a minimal single-part DOCX from the markdown.
func (LocalRenderer) Render(ctx context.Context, templateID, markdown string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc bytes.Buffer
	doc.WriteString(documentHeader)
	for _, line := range strings.Split(markdown, "\n") {
		writeParagraph(&doc, line)
	}
	doc.WriteString(documentFooter)

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", part.name, err)
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func writeParagraph(buf *bytes.Buffer, line string) {
	text := strings.TrimSpace(line)
	heading := false
	for strings.HasPrefix(text, "#") {
		heading = true
		text = strings.TrimSpace(strings.TrimPrefix(text, "#"))
	}

	buf.WriteString(`<w:p><w:r>`)
	if heading {
		buf.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	buf.WriteString(`<w:t xml:space="preserve">`)
	buf.WriteString(escapeXML(text))
	buf.WriteString(`</w:t></w:r></w:p>`)
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(text)); err != nil {
		return ""
	}
	return buf.String()
}
