package docgen

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the generation route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/generate", h.generate)
}

type generateRequest struct {
	VersionID  string `json:"versionId"`
	TemplateID string `json:"templateId"`
}

type generateResponse struct {
	DocumentID  string `json:"documentId"`
	DownloadURL string `json:"downloadUrl"`
}

func (h *Handler) generate(c *gin.Context) {
	// Both fields are optional and an empty body is fine.
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), c.Param("id"), GenerateInput{
		VersionID:  req.VersionID,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume or version not found", nil)
		case errors.Is(err, ErrRenderUnavailable):
			respond.Error(c, http.StatusBadGateway, "render_unavailable", "document renderer is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate document", nil)
		}
		return
	}
	c.Set("documentId", result.DocumentID)
	respond.Created(c, generateResponse{
		DocumentID:  result.DocumentID,
		DownloadURL: result.DownloadURL,
	})
}
