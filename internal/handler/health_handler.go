package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/fmontiron/portfolio-api/pkg/response"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler builds a new handler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	response.JSON(c, code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
