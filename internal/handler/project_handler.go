package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/response"
)

type projectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, patch dto.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectHandler exposes portfolio project endpoints.
type ProjectHandler struct {
	service projectService
}

// NewProjectHandler builds a new handler.
func NewProjectHandler(service projectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List godoc
// @Summary List projects, featured first
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project by id
// @Tags Projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, project)
}

// Create godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateProjectRequest true "Project payload"
// @Success 201 {object} models.Project
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid project payload"))
		return
	}
	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project)
}

// Update godoc
// @Summary Partially update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project id"
// @Param payload body dto.ProjectPatch true "Fields to change"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch dto.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid project payload"))
		return
	}
	project, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project id"
// @Success 200 {object} map[string]bool
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
