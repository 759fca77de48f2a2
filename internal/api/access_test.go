package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRejectMissingOrBadToken(t *testing.T) {
	e := newTestEnv(t)

	// No token at all
	w := e.doJSON(http.MethodGet, "/api/admin/books", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"UNAUTHORIZED"}`, w.Body.String())

	// Garbage token
	w = e.doJSON(http.MethodGet, "/api/admin/books", "", "not-a-real-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"UNAUTHORIZED"}`, w.Body.String())
}

func TestAdminRoutesForbidUserRole(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, e.createUser(t, "reader@example.com", "secret123", "user"))

	// A valid token with role user authenticates but is not authorized
	w := e.doJSON(http.MethodGet, "/api/admin/books", "", token)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"FORBIDDEN"}`, w.Body.String())
}

// End-to-end: register, get rejected, be promoted out-of-band, then run a
// full book lifecycle with the fresh admin token.
func TestRolePromotionUnlocksBookLifecycle(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(http.MethodPost, "/api/auth/register",
		`{"email":"writer@example.com","name":"Writer","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	// Fresh registration carries role user and cannot read the admin surface
	denied := e.doJSON(http.MethodGet, "/api/admin/books", "", reg.Token)
	require.Equal(t, http.StatusForbidden, denied.Code)

	// Promote out-of-band, then log in again for a token with the new role
	require.NoError(t, e.gdb.Model(&domain.User{}).Where("email = ?", "writer@example.com").
		Update("role", "admin").Error)
	w = e.doJSON(http.MethodPost, "/api/auth/login",
		`{"email":"writer@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	// Create
	created := e.doForm(http.MethodPost, "/api/admin/books", url.Values{
		"title":       {"First Novel"},
		"genre":       {"Fiction"},
		"description": {"A debut."},
		"rating":      {"4.5"},
		"sort_order":  {"1"},
	}, login.Token)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())
	var book domain.Book
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &book))
	assert.Equal(t, "First Novel", book.Title)

	// Update
	updated := e.doForm(http.MethodPut, "/api/admin/books/1", url.Values{
		"title":       {"First Novel, Revised"},
		"genre":       {"Fiction"},
		"description": {"A debut, revised."},
		"rating":      {"5"},
		"sort_order":  {"1"},
	}, login.Token)
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &book))
	assert.Equal(t, "First Novel, Revised", book.Title)

	// Delete, then confirm the list no longer contains it
	deleted := e.doJSON(http.MethodDelete, "/api/admin/books/1", "", login.Token)
	require.Equal(t, http.StatusOK, deleted.Code)
	list := e.doJSON(http.MethodGet, "/api/admin/books", "", login.Token)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, `[]`, list.Body.String())
}
