package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type projectRepoStub struct {
	projects map[int64]models.Project
	nextID   int64
	maxSort  int
	err      error
}

func (s *projectRepoStub) List(ctx context.Context) ([]models.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []models.Project
	for _, p := range s.projects {
		result = append(result, p)
	}
	return result, nil
}

func (s *projectRepoStub) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.projects[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (s *projectRepoStub) MaxSortOrder(ctx context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.maxSort, nil
}

func (s *projectRepoStub) Create(ctx context.Context, p *models.Project) error {
	if s.err != nil {
		return s.err
	}
	if s.projects == nil {
		s.projects = make(map[int64]models.Project)
	}
	s.nextID++
	p.ID = s.nextID
	s.projects[p.ID] = *p
	return nil
}

func (s *projectRepoStub) Update(ctx context.Context, p *models.Project) error {
	if s.err != nil {
		return s.err
	}
	s.projects[p.ID] = *p
	return nil
}

func (s *projectRepoStub) Delete(ctx context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.projects[id]; !ok {
		return 0, nil
	}
	delete(s.projects, id)
	return 1, nil
}

func TestProjectServiceCreateAppendsToEnd(t *testing.T) {
	repo := &projectRepoStub{maxSort: 4}
	svc := NewProjectService(repo, nil, nil)

	project, err := svc.Create(context.Background(), dto.CreateProjectRequest{Title: "ARKUM"})
	require.NoError(t, err)
	assert.Equal(t, 5, project.SortOrder)
	assert.Equal(t, models.StringList{}, project.Stack)
	assert.Equal(t, models.StringList{}, project.Images)
}

func TestProjectServiceCreateHonoursExplicitSortOrder(t *testing.T) {
	repo := &projectRepoStub{maxSort: 4}
	svc := NewProjectService(repo, nil, nil)

	order := 1
	project, err := svc.Create(context.Background(), dto.CreateProjectRequest{Title: "ARKUM", SortOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 1, project.SortOrder)
}

func TestProjectServiceCreateRequiresTitle(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateProjectRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProjectServiceUpdatePatchSemantics(t *testing.T) {
	repo := &projectRepoStub{projects: map[int64]models.Project{
		1: {ID: 1, Title: "Old", Link: "https://old.example", Stack: models.StringList{"PHP"}, Featured: true},
	}}
	svc := NewProjectService(repo, nil, nil)

	newTitle := "New"
	emptyLink := ""
	project, err := svc.Update(context.Background(), 1, dto.ProjectPatch{
		Title: &newTitle,
		Link:  &emptyLink,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", project.Title)
	assert.Equal(t, "", project.Link, "explicit empty value clears the field")
	assert.Equal(t, models.StringList{"PHP"}, project.Stack, "absent field keeps stored value")
	assert.True(t, project.Featured)
}

func TestProjectServiceUpdateMissingProject(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	title := "New"
	_, err := svc.Update(context.Background(), 42, dto.ProjectPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestProjectServiceGetMapsNoRows(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestProjectServiceDeleteMissingIsNotFound(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestProjectServiceListNeverReturnsNil(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectServiceListRepositoryError(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{err: errors.New("disk on fire")}, nil, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}
