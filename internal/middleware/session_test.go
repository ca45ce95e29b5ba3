package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/internal/session"
)

func sessionTestRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireSession(store), func(c *gin.Context) {
		sess := c.MustGet(ContextSessionKey).(*session.Session)
		c.JSON(http.StatusOK, gin.H{"username": sess.Username})
	})
	return r
}

func TestRequireSessionMissingHeader(t *testing.T) {
	r := sessionTestRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionMalformedHeader(t *testing.T) {
	r := sessionTestRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionUnknownToken(t *testing.T) {
	r := sessionTestRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, w.Body.String())
}

func TestRequireSessionValidToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sess, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)

	r := sessionTestRouter(store)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())
}
