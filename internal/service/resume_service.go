package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/export"
)

type resumeExporter interface {
	Render(r export.Resume) ([]byte, error)
}

// ResumeService renders a downloadable PDF resume from the stored
// settings and experience entries in the requested language.
type ResumeService struct {
	settings    settingsRepository
	experiences experienceRepository
	exporter    resumeExporter
	logger      *zap.Logger
}

// NewResumeService constructs a ResumeService instance.
func NewResumeService(settings settingsRepository, experiences experienceRepository, exporter resumeExporter, logger *zap.Logger) *ResumeService {
	if exporter == nil {
		exporter = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeService{settings: settings, experiences: experiences, exporter: exporter, logger: logger}
}

// Render builds the PDF for "en" or "es"; any other value falls back to "en".
func (s *ResumeService) Render(ctx context.Context, lang string) ([]byte, error) {
	spanish := lang == "es"

	rows, err := s.settings.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch settings")
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		if spanish {
			values[row.Key] = row.ValueES
		} else {
			values[row.Key] = row.ValueEN
		}
	}

	bio := values["bio_long"]
	if bio == "" {
		bio = values["bio_short"]
	}
	resume := export.Resume{
		Name:     values["name"],
		Role:     values["role"],
		Location: values["location"],
		Bio:      bio,
	}
	if resume.Name == "" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no resume content available")
	}

	experiences, err := s.experiences.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch experiences")
	}

	// Main entries carry the detail; minor entries follow as one-liners.
	for _, pass := range []models.ExperienceType{models.ExperienceMain, models.ExperienceMinor} {
		for _, e := range experiences {
			if e.Type != pass {
				continue
			}
			desc := e.DescriptionEN
			if spanish {
				desc = e.DescriptionES
			}
			company := e.Company
			if company == "" {
				company = e.Context
			}
			resume.Entries = append(resume.Entries, export.ResumeEntry{
				Role:        e.Role,
				Company:     company,
				Period:      e.Period,
				Description: desc,
				Tech:        e.Tech,
			})
		}
	}

	pdf, err := s.exporter.Render(resume)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render resume")
	}
	return pdf, nil
}
