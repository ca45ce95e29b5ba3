package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/fmontiron/portfolio-api/api/swagger"
	"github.com/fmontiron/portfolio-api/internal/database"
	"github.com/fmontiron/portfolio-api/internal/handler"
	"github.com/fmontiron/portfolio-api/internal/repository"
	"github.com/fmontiron/portfolio-api/internal/service"
	"github.com/fmontiron/portfolio-api/internal/session"
	"github.com/fmontiron/portfolio-api/pkg/cache"
	"github.com/fmontiron/portfolio-api/pkg/config"
	sqlitedb "github.com/fmontiron/portfolio-api/pkg/database"
	"github.com/fmontiron/portfolio-api/pkg/export"
	"github.com/fmontiron/portfolio-api/pkg/logger"
	"github.com/fmontiron/portfolio-api/pkg/mailer"
	"github.com/fmontiron/portfolio-api/pkg/storage"
)

// @title Portfolio API
// @version 1.0.0
// @description Bilingual personal portfolio backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx := context.Background()

	db, err := sqlitedb.NewSQLite(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	if err := database.EnsureAdmin(ctx, db, cfg.Admin.DefaultPassword, logr); err != nil {
		return err
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}
	logr.Info("session store ready", zap.String("backend", cfg.Sessions.Backend))

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("init uploads storage: %w", err)
	}

	var mail mailer.Mailer
	if cfg.Mail.ResendAPIKey != "" && cfg.Mail.To != "" {
		mail = mailer.NewResend(cfg.Mail.ResendAPIKey, cfg.Mail.From, cfg.Mail.To)
		logr.Info("contact notifications enabled", zap.String("to", cfg.Mail.To))
	} else {
		logr.Info("contact notifications disabled, no mail provider configured")
	}

	settingsRepo := repository.NewSettingsRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	notifications := service.NewNotificationService(mail, logr)
	notifications.Start(ctx)
	defer notifications.Stop()

	metrics := service.NewMetricsService()

	deps := handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Sessions: sessions,

		Settings:    handler.NewSettingsHandler(service.NewSettingsService(settingsRepo, logr)),
		Projects:    handler.NewProjectHandler(service.NewProjectService(projectRepo, nil, logr)),
		Experiences: handler.NewExperienceHandler(service.NewExperienceService(experienceRepo, nil, logr)),
		Contact:     handler.NewContactHandler(service.NewContactService(contactRepo, notifications, nil, logr)),
		Auth:        handler.NewAuthHandler(service.NewAuthService(adminRepo, sessions, nil, logr)),
		Upload:      handler.NewUploadHandler(service.NewUploadService(uploads, cfg.Uploads.PublicPath, cfg.Uploads.MaxSizeBytes, logr)),
		Resume:      handler.NewResumeHandler(service.NewResumeService(settingsRepo, experienceRepo, export.NewPDFExporter(), logr)),
		Health:      handler.NewHealthHandler(db),

		Metrics:    metrics,
		UploadsDir: uploads.Dir(),
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logr.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Sessions.Backend {
	case "redis":
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.Sessions.TTL), nil
	default:
		return session.NewMemoryStore(cfg.Sessions.TTL), nil
	}
}
