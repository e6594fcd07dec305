package resumes

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

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.getByID)
	rg.PATCH("/resumes/:id", h.update)
}

type createRequest struct {
	Title         string `json:"title"`
	TargetRole    string `json:"targetRole"`
	TargetCompany string `json:"targetCompany"`
	TemplateID    string `json:"templateId"`
	Markdown      string `json:"markdown"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Title:         req.Title,
		TargetRole:    req.TargetRole,
		TargetCompany: req.TargetCompany,
		TemplateID:    req.TemplateID,
		Markdown:      req.Markdown,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		}
		return
	}

	respond.Created(c, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]ResumeResponse, 0, len(all))
	for _, resume := range all {
		resp = append(resp, toResponse(resume))
	}
	respond.OK(c, resp)
}

func (h *Handler) getByID(c *gin.Context) {
	resume, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}
	respond.OK(c, toResponse(resume))
}

type updateRequest struct {
	Title         *string `json:"title"`
	TargetRole    *string `json:"targetRole"`
	TargetCompany *string `json:"targetCompany"`
	TemplateID    *string `json:"templateId"`
	Markdown      *string `json:"markdown"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Title:         req.Title,
		TargetRole:    req.TargetRole,
		TargetCompany: req.TargetCompany,
		TemplateID:    req.TemplateID,
		Markdown:      req.Markdown,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", nil)
		}
		return
	}
	respond.OK(c, toResponse(resume))
}
