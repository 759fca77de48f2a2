package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// newProtectedRouter mirrors the production ordering: the JWT check runs
// before the role check on every admin route.
func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", JWTAuthMiddleware(testSecret), AdminOnlyMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	r := newProtectedRouter()
	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"UNAUTHORIZED"}`, w.Body.String())
}

func TestWrongSchemeIsUnauthorized(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.GenerateJWT(1, "a@example.com", "admin", "A", testSecret, time.Hour)
	require.NoError(t, err)
	// Basic scheme must be rejected even with a valid token inside
	w := doGet(r, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	r := newProtectedRouter()
	w := doGet(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.GenerateJWT(1, "a@example.com", "admin", "A", testSecret, -time.Minute)
	require.NoError(t, err)
	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRoleIsForbidden(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.GenerateJWT(1, "a@example.com", "user", "A", testSecret, time.Hour)
	require.NoError(t, err)
	// Authentication succeeded, authorization did not: 403, never 401
	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"FORBIDDEN"}`, w.Body.String())
}

func TestAdminRolePasses(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.GenerateJWT(1, "a@example.com", "admin", "A", testSecret, time.Hour)
	require.NoError(t, err)
	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCheckWithoutClaimsIsUnauthorized(t *testing.T) {
	// The role check treats a missing claim set as unauthenticated, so a
	// misordered chain can never produce 403 before authentication
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bare", AdminOnlyMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	req := httptest.NewRequest(http.MethodGet, "/bare", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"UNAUTHORIZED"}`, w.Body.String())
}
