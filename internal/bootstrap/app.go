package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/docgen"
	"resume-portal/internal/documents"
	"resume-portal/internal/resumes"
	"resume-portal/internal/sections"
	"resume-portal/internal/services/health"
	"resume-portal/internal/shared/config"
	"resume-portal/internal/shared/server"
	"resume-portal/internal/shared/storage/db"
	"resume-portal/internal/shared/storage/object"
	localstore "resume-portal/internal/shared/storage/object/local"
	s3store "resume-portal/internal/shared/storage/object/s3"
	"resume-portal/internal/shared/telemetry"
	"resume-portal/internal/templates"
	"resume-portal/internal/versions"
)

// App holds the wired dependency graph.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo   resumes.Repo
	SectionsRepo  sections.Repo
	VersionsRepo  versions.Repo
	DocumentsRepo documents.Repo
	TemplatesRepo templates.Repo

	Assembler *resumes.Assembler
	Renderer  docgen.Renderer

	ResumesService   *resumes.Service
	SectionsService  *sections.Service
	VersionsService  *versions.Service
	DocumentsService *documents.Service
	DocgenService    *docgen.Service
	TemplatesService *templates.Service
}

// Build wires repositories, services, handlers and the router from config.
// Without a DATABASE_URL the app runs entirely on in-memory repositories;
// production refuses to start that way.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	app := &App{Config: cfg}

	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		store, err := buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DB = sqlDB
		app.Store = store
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.SectionsRepo = &sections.PGRepo{DB: sqlDB}
		app.VersionsRepo = &versions.PGRepo{DB: sqlDB}
		app.DocumentsRepo = &documents.PGRepo{DB: sqlDB, Store: store}
	} else {
		if cfg.Env == "production" {
			return nil, errors.New("DATABASE_URL is required in production")
		}
		telemetry.Info("database not configured, using in-memory repositories", map[string]any{"env": cfg.Env})
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.SectionsRepo = sections.NewMemoryRepo()
		app.VersionsRepo = versions.NewMemoryRepo()
		app.DocumentsRepo = documents.NewMemoryRepo()
	}
	app.TemplatesRepo = templates.NewMemoryRepo(templates.Defaults()...)

	app.Assembler = &resumes.Assembler{
		Resumes:  app.ResumesRepo,
		Sections: sectionContentSource{repo: app.SectionsRepo},
	}
	app.Renderer = buildRenderer(cfg)

	checker := resumeChecker{repo: app.ResumesRepo}
	app.ResumesService = resumes.NewService(app.ResumesRepo)
	app.SectionsService = sections.NewService(app.SectionsRepo, checker)
	app.VersionsService = versions.NewService(app.VersionsRepo, versionResumeSource{repo: app.ResumesRepo}, app.Assembler)
	app.DocumentsService = documents.NewService(app.DocumentsRepo, checker)
	app.DocgenService = docgen.NewService(
		docgenResumeSource{repo: app.ResumesRepo},
		docgenVersionSource{repo: app.VersionsRepo},
		app.Assembler,
		app.Renderer,
		app.DocumentsRepo,
	)
	app.TemplatesService = templates.NewService(app.TemplatesRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Cfg:       cfg,
		Health:    health.NewService(app.DB),
		Resumes:   resumes.NewHandler(app.ResumesService),
		Sections:  sections.NewHandler(app.SectionsService, checker),
		Versions:  versions.NewHandler(app.VersionsService),
		Documents: documents.NewHandler(app.DocumentsService),
		Docgen:    docgen.NewHandler(app.DocgenService),
		Templates: templates.NewHandler(app.TemplatesService),
	})
	return app, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func buildRenderer(cfg config.Config) docgen.Renderer {
	if cfg.RendererType == "local" {
		return docgen.LocalRenderer{}
	}
	return docgen.NewGateway(cfg.GeneratorURL, time.Duration(cfg.GeneratorTimeoutS)*time.Second)
}
