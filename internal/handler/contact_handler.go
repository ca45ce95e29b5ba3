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

type contactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ContactHandler exposes the public contact form and the admin inbox.
type ContactHandler struct {
	service contactService
}

// NewContactHandler builds a new handler.
func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create godoc
// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.CreateContactRequest true "Contact payload"
// @Success 201 {object} map[string]interface{}
// @Router /contact [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}
	message, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"success": true, "id": message.ID})
}

// List godoc
// @Summary List contact messages, newest first
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactMessage
// @Router /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}

// MarkRead godoc
// @Summary Mark a contact message as read
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} map[string]bool
// @Router /contact/{id}/read [put]
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} map[string]bool
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
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
