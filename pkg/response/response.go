package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

// JSON sends a success payload as-is. The public site consumes these
// responses directly, so there is no envelope around the data.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Success responds 200 with the conventional {"success": true} body.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, gin.H{"success": true})
}

// Error converts any error to its HTTP status and a non-sensitive
// {"error": message} body. The wrapped cause never reaches the wire.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
