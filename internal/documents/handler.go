package documents

import (
	"errors"
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

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/documents", h.list)
	rg.GET("/resumes/:id/documents/:documentId/download", h.download)
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.ListByResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		}
		return
	}
	resp := make([]DocumentSummary, 0, len(all))
	for _, doc := range all {
		resp = append(resp, toSummary(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) download(c *gin.Context) {
	doc, content, err := h.Svc.Download(c.Request.Context(), c.Param("id"), c.Param("documentId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to download document", nil)
		}
		return
	}
	c.Set("documentId", doc.ID)
	c.Header("Content-Disposition", `attachment; filename="resume.docx"`)
	c.Data(http.StatusOK, doc.ContentType, content)
}
