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

type projectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	MaxSortOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// ProjectService implements portfolio project use cases.
type ProjectService struct {
	repo      projectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProjectService constructs a ProjectService instance.
func NewProjectService(repo projectRepository, validate *validator.Validate, logger *zap.Logger) *ProjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{repo: repo, validator: validate, logger: logger}
}

// List returns all projects, featured first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch projects")
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Get returns a single project by id.
func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "project not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch project")
	}
	return project, nil
}

// Create inserts a new project. When no sort order is given the project
// goes to the end of the list: max(sort_order) + 1.
func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		max, err := s.repo.MaxSortOrder(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign sort order")
		}
		sortOrder = max + 1
	}

	project := &models.Project{
		Title:         req.Title,
		DescriptionEN: req.DescriptionEN,
		DescriptionES: req.DescriptionES,
		ImpactEN:      req.ImpactEN,
		ImpactES:      req.ImpactES,
		Stack:         listOrEmpty(req.Stack),
		Link:          req.Link,
		Images:        listOrEmpty(req.Images),
		Featured:      req.Featured,
		SortOrder:     sortOrder,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create project")
	}
	return project, nil
}

// Update applies a partial patch: absent fields keep the stored value,
// present fields overwrite it, including explicit empty values.
func (s *ProjectService) Update(ctx context.Context, id int64, patch dto.ProjectPatch) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "project not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch project")
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.DescriptionEN != nil {
		project.DescriptionEN = *patch.DescriptionEN
	}
	if patch.DescriptionES != nil {
		project.DescriptionES = *patch.DescriptionES
	}
	if patch.ImpactEN != nil {
		project.ImpactEN = *patch.ImpactEN
	}
	if patch.ImpactES != nil {
		project.ImpactES = *patch.ImpactES
	}
	if patch.Stack != nil {
		project.Stack = listOrEmpty(*patch.Stack)
	}
	if patch.Link != nil {
		project.Link = *patch.Link
	}
	if patch.Images != nil {
		project.Images = listOrEmpty(*patch.Images)
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}
	if patch.SortOrder != nil {
		project.SortOrder = *patch.SortOrder
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update project")
	}
	return project, nil
}

// Delete removes a project, reporting not-found when the row is absent.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete project")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

func listOrEmpty(items []string) models.StringList {
	if items == nil {
		return models.StringList{}
	}
	return models.StringList(items)
}
