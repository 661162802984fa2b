package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hredostate/upss-webly/internal/auth"
	"github.com/hredostate/upss-webly/internal/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
		})
		protected.GET("/admin", RoleMiddleware(models.UserRoleAdmin), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	auth.Init("test-secret", 60)
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	auth.Init("test-secret", 60)
	r := setupRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleApplicant))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRoleMiddlewareRejectsWrongRole(t *testing.T) {
	auth.Init("test-secret", 60)
	r := setupRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleApplicant))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	auth.Init("test-secret", 60)
	r := setupRouter()

	token, err := auth.GenerateToken("admin-1", string(models.UserRoleAdmin))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
