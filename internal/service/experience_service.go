package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type experienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	FindByID(ctx context.Context, id int64) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// ExperienceService implements experience entry use cases.
type ExperienceService struct {
	repo      experienceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExperienceService constructs an ExperienceService instance.
func NewExperienceService(repo experienceRepository, validate *validator.Validate, logger *zap.Logger) *ExperienceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExperienceService{repo: repo, validator: validate, logger: logger}
}

// List returns all experiences in insertion order.
func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	experiences, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch experiences")
	}
	if experiences == nil {
		experiences = []models.Experience{}
	}
	return experiences, nil
}

// Create inserts a new experience. Type defaults to main and the layout
// delay to 0s, matching the front-end rendering conventions.
func (s *ExperienceService) Create(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "role is required")
	}

	expType := models.ExperienceType(req.Type)
	if expType == "" {
		expType = models.ExperienceMain
	}
	layoutDelay := req.LayoutDelay
	if layoutDelay == "" {
		layoutDelay = "0s"
	}

	experience := &models.Experience{
		Role:          req.Role,
		Company:       req.Company,
		Period:        req.Period,
		DescriptionEN: req.DescriptionEN,
		DescriptionES: req.DescriptionES,
		Tech:          listOrEmpty(req.Tech),
		Type:          expType,
		Context:       req.Context,
		LayoutDelay:   layoutDelay,
	}

	if err := s.repo.Create(ctx, experience); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create experience")
	}
	return experience, nil
}

// Update applies a partial patch over the stored row.
func (s *ExperienceService) Update(ctx context.Context, id int64, patch dto.ExperiencePatch) (*models.Experience, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "type must be main or minor")
	}

	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "experience not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch experience")
	}

	if patch.Role != nil {
		experience.Role = *patch.Role
	}
	if patch.Company != nil {
		experience.Company = *patch.Company
	}
	if patch.Period != nil {
		experience.Period = *patch.Period
	}
	if patch.DescriptionEN != nil {
		experience.DescriptionEN = *patch.DescriptionEN
	}
	if patch.DescriptionES != nil {
		experience.DescriptionES = *patch.DescriptionES
	}
	if patch.Tech != nil {
		experience.Tech = listOrEmpty(*patch.Tech)
	}
	if patch.Type != nil {
		experience.Type = models.ExperienceType(*patch.Type)
	}
	if patch.Context != nil {
		experience.Context = *patch.Context
	}
	if patch.LayoutDelay != nil {
		experience.LayoutDelay = *patch.LayoutDelay
	}

	if err := s.repo.Update(ctx, experience); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update experience")
	}
	return experience, nil
}

// Delete removes an experience, reporting not-found when the row is absent.
func (s *ExperienceService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete experience")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "experience not found")
	}
	return nil
}
