package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/docgen"
	"resume-portal/internal/documents"
	"resume-portal/internal/resumes"
	"resume-portal/internal/sections"
	"resume-portal/internal/services/health"
	"resume-portal/internal/shared/config"
	"resume-portal/internal/shared/metrics"
	"resume-portal/internal/shared/server/middleware"
	"resume-portal/internal/templates"
	"resume-portal/internal/versions"
)

// RouterDeps carries the wired handlers the router registers.
type RouterDeps struct {
	Cfg       config.Config
	Health    *health.Service
	Resumes   *resumes.Handler
	Sections  *sections.Handler
	Versions  *versions.Handler
	Documents *documents.Handler
	Docgen    *docgen.Handler
	Templates *templates.Handler
}

// NewRouter builds the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env == "production" || deps.Cfg.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Cfg.CORSAllowOrigin),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	engine.GET("/metrics", metrics.Handler())

	api := engine.Group("/api/v1")
	deps.Resumes.RegisterRoutes(api)
	deps.Sections.RegisterRoutes(api)
	deps.Versions.RegisterRoutes(api)
	deps.Documents.RegisterRoutes(api)
	deps.Docgen.RegisterRoutes(api)
	deps.Templates.RegisterRoutes(api)

	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
