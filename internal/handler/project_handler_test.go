package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type projectServiceMock struct {
	listResp   []models.Project
	getResp    *models.Project
	getErr     error
	createResp *models.Project
	createErr  error
	updateResp *models.Project
	deleteErr  error
}

func (m *projectServiceMock) List(ctx context.Context) ([]models.Project, error) {
	return m.listResp, nil
}

func (m *projectServiceMock) Get(ctx context.Context, id int64) (*models.Project, error) {
	return m.getResp, m.getErr
}

func (m *projectServiceMock) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResp, nil
}

func (m *projectServiceMock) Update(ctx context.Context, id int64, patch dto.ProjectPatch) (*models.Project, error) {
	return m.updateResp, nil
}

func (m *projectServiceMock) Delete(ctx context.Context, id int64) error {
	return m.deleteErr
}

func TestProjectHandlerListEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{listResp: []models.Project{}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/projects", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProjectHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{
		createResp: &models.Project{ID: 1, Title: "ARKUM", Stack: models.StringList{"Go"}},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateProjectRequest{Title: "ARKUM", Stack: []string{"Go"}})
	c.Request, _ = http.NewRequest(http.MethodPost, "/projects", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ARKUM", created.Title)
}

func TestProjectHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(`not json`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestProjectHandlerGetInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/projects/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "project not found"),
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/projects/9", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"project not found"}`, w.Body.String())
}

func TestProjectHandlerDeleteSuccessShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(&projectServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/projects/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
