package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type settingsRepository interface {
	List(ctx context.Context) ([]models.Setting, error)
	UpsertMany(ctx context.Context, settings []models.Setting) error
}

// SettingsService exposes the bilingual settings map.
type SettingsService struct {
	repo   settingsRepository
	logger *zap.Logger
}

// NewSettingsService constructs a SettingsService instance.
func NewSettingsService(repo settingsRepository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger}
}

// Map returns all settings as key → {en,es}.
func (s *SettingsService) Map(ctx context.Context) (models.SettingsMap, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch settings")
	}

	settings := make(models.SettingsMap, len(rows))
	for _, row := range rows {
		settings[row.Key] = models.LocalizedValue{EN: row.ValueEN, ES: row.ValueES}
	}
	return settings, nil
}

// Update upserts the provided entries and echoes the full map back from
// the store, so the client always sees authoritative state.
func (s *SettingsService) Update(ctx context.Context, updates models.SettingsMap) (models.SettingsMap, error) {
	if len(updates) == 0 {
		return s.Map(ctx)
	}

	settings := make([]models.Setting, 0, len(updates))
	for key, value := range updates {
		if key == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "setting key must not be empty")
		}
		settings = append(settings, models.Setting{Key: key, ValueEN: value.EN, ValueES: value.ES})
	}

	if err := s.repo.UpsertMany(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update settings")
	}

	return s.Map(ctx)
}
