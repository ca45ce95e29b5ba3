package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

// idParam parses the numeric :id path parameter.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid id")
	}
	return id, nil
}
