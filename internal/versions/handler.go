package versions

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

// RegisterRoutes attaches version routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/versions", h.create)
	rg.GET("/resumes/:id/versions", h.list)
}

type createRequest struct {
	Label      string `json:"label"`
	Markdown   string `json:"markdown"`
	TemplateID string `json:"templateId"`
}

func (h *Handler) create(c *gin.Context) {
	// An empty body snapshots the resume's current content.
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	version, err := h.Svc.Create(c.Request.Context(), c.Param("id"), CreateInput{
		Label:      req.Label,
		Markdown:   req.Markdown,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create version", nil)
		}
		return
	}
	c.Set("versionId", version.ID)
	respond.Created(c, toResponse(version))
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.ListByResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list versions", nil)
		}
		return
	}
	resp := make([]VersionResponse, 0, len(all))
	for _, version := range all {
		resp = append(resp, toResponse(version))
	}
	respond.OK(c, resp)
}
