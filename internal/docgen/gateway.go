package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-portal/internal/shared/telemetry"
)

// maxDocumentBytes caps how much of a renderer response is read in.
const maxDocumentBytes = 32 << 20

// Gateway calls the external document generator over HTTP. One attempt per
// request; any transport or HTTP-level failure maps to ErrRenderUnavailable.
type Gateway struct {
	BaseURL string
	HTTP    *http.Client
}

// NewGateway constructs a Gateway for the given generator endpoint.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type renderRequest struct {
	TemplateID string `json:"templateId"`
	FileType   string `json:"fileType"`
	CVMarkdown string `json:"cvMarkdown"`
}

// Render posts the markdown to the generator and returns the DOCX bytes.
func (g *Gateway) Render(ctx context.Context, templateID, markdown string) ([]byte, error) {
	body, err := json.Marshal(renderRequest{
		TemplateID: templateID,
		FileType:   "DOCX",
		CVMarkdown: markdown,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		telemetry.Warn("renderer request failed", map[string]any{
			"url":   g.BaseURL,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		telemetry.Warn("renderer returned failure status", map[string]any{
			"url":    g.BaseURL,
			"status": resp.StatusCode,
			"body":   string(snippet),
		})
		return nil, fmt.Errorf("%w: status %d", ErrRenderUnavailable, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		telemetry.Warn("renderer response read failed", map[string]any{
			"url":   g.BaseURL,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrRenderUnavailable)
	}
	return content, nil
}
