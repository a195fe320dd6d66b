package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/arnold/lifehub-api/internal/config"
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/arnold/lifehub-api/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupApp wires a fresh sqlite database and the full route tree.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "test.db")}
	require.NoError(t, database.Connect(cfg))
	require.NoError(t, database.Migrate())

	app := fiber.New()
	routes.Setup(app)
	return app
}

// newUser creates an account directly and returns its id and a bearer
// token.
func newUser(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	user := models.User{Email: email, Name: "Test User"}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return user.ID, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
