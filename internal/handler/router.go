package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/middleware"
	"github.com/fmontiron/portfolio-api/internal/service"
	"github.com/fmontiron/portfolio-api/internal/session"
	"github.com/fmontiron/portfolio-api/pkg/config"
	"github.com/fmontiron/portfolio-api/pkg/logger"
	corsmiddleware "github.com/fmontiron/portfolio-api/pkg/middleware/cors"
	reqidmiddleware "github.com/fmontiron/portfolio-api/pkg/middleware/requestid"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions session.Store

	Settings    *SettingsHandler
	Projects    *ProjectHandler
	Experiences *ExperienceHandler
	Contact     *ContactHandler
	Auth        *AuthHandler
	Upload      *UploadHandler
	Resume      *ResumeHandler
	Health      *HealthHandler

	Metrics    *service.MetricsService
	UploadsDir string
}

// NewRouter assembles the gin engine: global middleware, the public site
// endpoints, and the session-gated admin surface.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	requireSession := middleware.RequireSession(deps.Sessions)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/health", deps.Health.Health)

		api.GET("/settings", deps.Settings.Get)
		api.PUT("/settings", requireSession, deps.Settings.Update)

		api.GET("/projects", deps.Projects.List)
		api.GET("/projects/:id", deps.Projects.Get)
		api.POST("/projects", requireSession, deps.Projects.Create)
		api.PUT("/projects/:id", requireSession, deps.Projects.Update)
		api.DELETE("/projects/:id", requireSession, deps.Projects.Delete)

		api.GET("/experiences", deps.Experiences.List)
		api.POST("/experiences", requireSession, deps.Experiences.Create)
		api.PUT("/experiences/:id", requireSession, deps.Experiences.Update)
		api.DELETE("/experiences/:id", requireSession, deps.Experiences.Delete)

		api.POST("/contact", deps.Contact.Create)
		api.GET("/contact", requireSession, deps.Contact.List)
		api.PUT("/contact/:id/read", requireSession, deps.Contact.MarkRead)
		api.DELETE("/contact/:id", requireSession, deps.Contact.Delete)

		api.POST("/auth/login", deps.Auth.Login)
		api.POST("/auth/verify", deps.Auth.Verify)
		api.POST("/auth/logout", deps.Auth.Logout)
		api.POST("/auth/change-password", deps.Auth.ChangePassword)

		api.POST("/upload", requireSession, deps.Upload.Upload)

		if cfg.Resume.Enabled && deps.Resume != nil {
			api.GET("/resume", deps.Resume.Download)
		}
	}

	if deps.UploadsDir != "" {
		r.Static(cfg.Uploads.PublicPath, deps.UploadsDir)
	}

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
