package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterProvisionsDefaults(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":    "new@example.com",
		"password": "secret123",
		"name":     "Newcomer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth models.AuthResponse
	decodeBody(t, resp, &auth)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "new@example.com", auth.User.Email)

	var hubCount, listCount int64
	database.DB.Model(&models.Hub{}).Where("owner = ?", auth.User.ID).Count(&hubCount)
	assert.EqualValues(t, 5, hubCount)

	database.DB.Model(&models.List{}).
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.user_id = ?", auth.User.ID).
		Count(&listCount)
	assert.EqualValues(t, 4, listCount)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	body := map[string]string{"email": "dup@example.com", "password": "secret123"}
	resp := doJSON(t, app, "POST", "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterValidatesInput(t *testing.T) {
	app := setupApp(t)

	// Short password
	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":    "short@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Not an email
	resp = doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginRoundTrip(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth models.AuthResponse
	decodeBody(t, resp, &auth)
	require.NotEmpty(t, auth.Token)

	me := doJSON(t, app, "GET", "/api/me", auth.Token, nil)
	assert.Equal(t, http.StatusOK, me.StatusCode)
	me.Body.Close()

	// Wrong password
	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/tasks", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProvisionEndpointIsIdempotent(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "manual@example.com")

	resp := doJSON(t, app, "POST", "/api/provision", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]bool
	decodeBody(t, resp, &out)
	assert.True(t, out["created"])

	resp = doJSON(t, app, "POST", "/api/provision", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &out)
	assert.False(t, out["created"])
}
