package sections

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	Resumes ResumeChecker
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resumes ResumeChecker) *Handler {
	return &Handler{Svc: svc, Resumes: resumes}
}

// RegisterRoutes attaches section routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/sections", h.list)
	rg.POST("/resumes/:id/sections", h.create)
	rg.PATCH("/resumes/:id/sections/reorder", h.reorder)
	rg.PATCH("/resumes/:id/sections/:sectionId", h.update)
	rg.DELETE("/resumes/:id/sections/:sectionId", h.remove)
	rg.GET("/resumes/:id/sections/:sectionId/history", h.history)
	rg.POST("/resumes/:id/sections/:sectionId/history/:versionId/restore", h.restore)
}

func (h *Handler) resumeExists(c *gin.Context) bool {
	exists, err := h.Resumes.Exists(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return false
	}
	if !exists {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return false
	}
	return true
}

// sectionInResume reports whether the section belongs to the resume in the
// path, writing a 404 when it does not.
func (h *Handler) sectionInResume(c *gin.Context) bool {
	sectionID := c.Param("sectionId")
	section, err := h.Svc.GetByID(c.Request.Context(), sectionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "section not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch section", nil)
		}
		return false
	}
	if section.ResumeID != c.Param("id") {
		respond.Error(c, http.StatusNotFound, "not_found", "section not found", nil)
		return false
	}
	return true
}

func (h *Handler) list(c *gin.Context) {
	if !h.resumeExists(c) {
		return
	}
	all, err := h.Svc.ListByResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sections", nil)
		return
	}
	resp := make([]SectionResponse, 0, len(all))
	for _, section := range all {
		resp = append(resp, toResponse(section))
	}
	respond.OK(c, resp)
}

type createRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	Order    *int   `json:"order"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	section, err := h.Svc.Create(c.Request.Context(), c.Param("id"), CreateInput{
		Title:    req.Title,
		Markdown: req.Markdown,
		Order:    req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create section", nil)
		}
		return
	}
	respond.Created(c, toResponse(section))
}

type reorderRequest struct {
	SectionIDs []string `json:"sectionIds"`
}

func (h *Handler) reorder(c *gin.Context) {
	if !h.resumeExists(c) {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.Reorder(c.Request.Context(), c.Param("id"), req.SectionIDs); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reorder sections", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

func (h *Handler) update(c *gin.Context) {
	if !h.resumeExists(c) || !h.sectionInResume(c) {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	section, err := h.Svc.Update(c.Request.Context(), c.Param("sectionId"), UpdateInput{
		Title:    req.Title,
		Markdown: req.Markdown,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "section not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update section", nil)
		}
		return
	}
	respond.OK(c, toResponse(section))
}

func (h *Handler) remove(c *gin.Context) {
	if !h.resumeExists(c) || !h.sectionInResume(c) {
		return
	}

	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete section", nil)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "section not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) history(c *gin.Context) {
	if !h.resumeExists(c) || !h.sectionInResume(c) {
		return
	}

	versions, err := h.Svc.ListHistory(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list section history", nil)
		return
	}
	resp := make([]VersionResponse, 0, len(versions))
	for _, version := range versions {
		resp = append(resp, toVersionResponse(version))
	}
	respond.OK(c, resp)
}

func (h *Handler) restore(c *gin.Context) {
	if !h.resumeExists(c) || !h.sectionInResume(c) {
		return
	}

	section, err := h.Svc.Restore(c.Request.Context(), c.Param("sectionId"), c.Param("versionId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "section version not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to restore section version", nil)
		}
		return
	}
	respond.OK(c, toResponse(section))
}
