package handler

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/response"
)

type uploadService interface {
	Save(file *multipart.FileHeader) (string, error)
}

// UploadHandler accepts admin image uploads.
type UploadHandler struct {
	service uploadService
}

// NewUploadHandler builds a new handler.
func NewUploadHandler(service uploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary Upload an image
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "image file is required"))
		return
	}
	url, err := h.service.Save(file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}
