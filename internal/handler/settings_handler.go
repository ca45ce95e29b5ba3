package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/response"
)

type settingsService interface {
	Map(ctx context.Context) (models.SettingsMap, error)
	Update(ctx context.Context, updates models.SettingsMap) (models.SettingsMap, error)
}

// SettingsHandler exposes the bilingual site settings.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler builds a new handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
// @Summary Get all site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.SettingsMap
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Map(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Update godoc
// @Summary Bulk upsert site settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SettingsMap true "Settings to upsert"
// @Success 200 {object} models.SettingsMap
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var updates models.SettingsMap
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	settings, err := h.service.Update(c.Request.Context(), updates)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}
