// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitto/orbitto-backend/internal/models"
	"github.com/orbitto/orbitto-backend/internal/utils"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	}

	r.GET("/protected", AuthRequired(), ok)
	r.GET("/managers-only", AuthRequired(), RoleRequired(models.UserRoleManager), ok)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := newAuthTestRouter()

	t.Run("missing header", func(t *testing.T) {
		w := doGet(t, r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doGet(t, r, "/protected", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doGet(t, r, "/protected", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateJWT(1, "jane@example.com", "user", 7)
		require.NoError(t, err)
		w := doGet(t, r, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRoleRequired(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := newAuthTestRouter()

	t.Run("plain user forbidden", func(t *testing.T) {
		token, err := utils.GenerateJWT(1, "jane@example.com", "user", 7)
		require.NoError(t, err)
		w := doGet(t, r, "/managers-only", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("matching role allowed", func(t *testing.T) {
		token, err := utils.GenerateJWT(2, "mike@example.com", "manager", 7)
		require.NoError(t, err)
		w := doGet(t, r, "/managers-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin overrides any role", func(t *testing.T) {
		token, err := utils.GenerateJWT(3, "root@example.com", "admin", 7)
		require.NoError(t, err)
		w := doGet(t, r, "/managers-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
