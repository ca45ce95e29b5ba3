package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/export"
)

type exporterStub struct {
	rendered *export.Resume
}

func (s *exporterStub) Render(r export.Resume) ([]byte, error) {
	s.rendered = &r
	return []byte("%PDF-1.4"), nil
}

func resumeTestRepos() (*settingsRepoStub, *experienceRepoStub) {
	settings := &settingsRepoStub{values: map[string]models.Setting{
		"name":      {Key: "name", ValueEN: "Francisco Montiron", ValueES: "Francisco Montiron"},
		"role":      {Key: "role", ValueEN: "Developer", ValueES: "Desarrollador"},
		"location":  {Key: "location", ValueEN: "Buenos Aires", ValueES: "Buenos Aires"},
		"bio_short": {Key: "bio_short", ValueEN: "Short bio", ValueES: "Bio corta"},
	}}
	experiences := &experienceRepoStub{experiences: map[int64]models.Experience{
		1: {ID: 1, Role: "Open Source", Type: models.ExperienceMinor, Context: "GitHub", DescriptionEN: "Contributions", DescriptionES: "Contribuciones"},
		2: {ID: 2, Role: "Developer", Company: "Arkum", Period: "2024", Type: models.ExperienceMain, DescriptionEN: "Built things", DescriptionES: "Construí cosas"},
	}}
	return settings, experiences
}

func TestResumeServiceRenderEnglish(t *testing.T) {
	settings, experiences := resumeTestRepos()
	exporter := &exporterStub{}
	svc := NewResumeService(settings, experiences, exporter, nil)

	pdf, err := svc.Render(context.Background(), "en")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, exporter.rendered)
	assert.Equal(t, "Francisco Montiron", exporter.rendered.Name)
	assert.Equal(t, "Short bio", exporter.rendered.Bio, "bio_short is the fallback when bio_long is absent")
	require.Len(t, exporter.rendered.Entries, 2)
	assert.Equal(t, "Developer", exporter.rendered.Entries[0].Role, "main entries come before minor ones")
	assert.Equal(t, "GitHub", exporter.rendered.Entries[1].Company, "minor entries fall back to their context")
}

func TestResumeServiceRenderSpanish(t *testing.T) {
	settings, experiences := resumeTestRepos()
	exporter := &exporterStub{}
	svc := NewResumeService(settings, experiences, exporter, nil)

	_, err := svc.Render(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "Desarrollador", exporter.rendered.Role)
	assert.Equal(t, "Construí cosas", exporter.rendered.Entries[0].Description)
}

func TestResumeServiceRenderWithoutContent(t *testing.T) {
	svc := NewResumeService(&settingsRepoStub{}, &experienceRepoStub{}, &exporterStub{}, nil)

	_, err := svc.Render(context.Background(), "en")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}
