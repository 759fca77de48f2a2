package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/config"
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain"
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testDBSeq int64

// testEnv bundles everything a handler test needs: a real router, an
// in-memory database, a Redis stand-in and the shared config.
type testEnv struct {
	router *gin.Engine
	gdb    *gorm.DB
	rdb    *redis.Client
	cfg    *config.Config
}

// newTestEnv builds a full router over a unique in-memory SQLite database
// and a miniredis-backed Redis client.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&domain.User{},
		&domain.Cover{},
		&domain.About{},
		&domain.Achievement{},
		&domain.Book{},
		&domain.Review{},
		&domain.Footer{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: time.Hour,
		MediaDir:     t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, gdb, rdb, cfg)
	return &testEnv{router: r, gdb: gdb, rdb: rdb, cfg: cfg}
}

// createUser inserts a user with a bcrypt-hashed password and returns it.
func (e *testEnv) createUser(t *testing.T, email, password, role string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := domain.User{Email: email, Name: "Test User", PasswordHash: string(hash), Role: role}
	require.NoError(t, e.gdb.Create(&u).Error)
	return u
}

// tokenFor issues a signed token for the given user.
func (e *testEnv) tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(u.ID, u.Email, u.Role, u.Name, e.cfg.JWTSecret, e.cfg.JWTExpiresIn)
	require.NoError(t, err)
	return token
}

// adminToken creates an admin user and returns a token for it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	return e.tokenFor(t, e.createUser(t, fmt.Sprintf("admin%d@example.com", atomic.AddInt64(&testDBSeq, 1)), "secret123", "admin"))
}

// doJSON performs a request with a JSON body.
func (e *testEnv) doJSON(method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doForm performs a request with a urlencoded form body.
func (e *testEnv) doForm(method, path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart performs a request with a multipart body, optionally
// attaching a file under fileField.
func (e *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, fileField, fileName string, fileContent []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
