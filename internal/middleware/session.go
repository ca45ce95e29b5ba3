package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fmontiron/portfolio-api/internal/session"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the active session.
const ContextSessionKey = "currentSession"

// RequireSession protects admin routes by requiring a valid session
// token in the Authorization header.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		sess, err := store.Verify(c.Request.Context(), parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if sess == nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}
