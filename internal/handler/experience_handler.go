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

type experienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error)
	Update(ctx context.Context, id int64, patch dto.ExperiencePatch) (*models.Experience, error)
	Delete(ctx context.Context, id int64) error
}

// ExperienceHandler exposes experience entry endpoints.
type ExperienceHandler struct {
	service experienceService
}

// NewExperienceHandler builds a new handler.
func NewExperienceHandler(service experienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// List godoc
// @Summary List experiences
// @Tags Experiences
// @Produce json
// @Success 200 {array} models.Experience
// @Router /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, experiences)
}

// Create godoc
// @Summary Create an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateExperienceRequest true "Experience payload"
// @Success 201 {object} models.Experience
// @Router /experiences [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid experience payload"))
		return
	}
	experience, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, experience)
}

// Update godoc
// @Summary Partially update an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience id"
// @Param payload body dto.ExperiencePatch true "Fields to change"
// @Success 200 {object} models.Experience
// @Router /experiences/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch dto.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid experience payload"))
		return
	}
	experience, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, experience)
}

// Delete godoc
// @Summary Delete an experience
// @Tags Experiences
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience id"
// @Success 200 {object} map[string]bool
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
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
