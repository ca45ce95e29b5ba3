package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmontiron/portfolio-api/pkg/response"
)

type resumeService interface {
	Render(ctx context.Context, lang string) ([]byte, error)
}

// ResumeHandler serves the generated PDF resume.
type ResumeHandler struct {
	service resumeService
}

// NewResumeHandler builds a new handler.
func NewResumeHandler(service resumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Download godoc
// @Summary Download the resume as PDF
// @Tags Resume
// @Produce application/pdf
// @Param lang query string false "Language (en or es)" default(en)
// @Success 200 {file} binary
// @Router /resume [get]
func (h *ResumeHandler) Download(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	if lang != "es" {
		lang = "en"
	}
	pdf, err := h.service.Render(c.Request.Context(), lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resume_%s.pdf", lang))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
