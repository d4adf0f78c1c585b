package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inkwell/internal/config"
	"inkwell/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		Port:      "8080",
		Env:       "test",
	}
}

// setupTestApp builds a server over in-memory sqlite with all routes mounted.
func setupTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	srv := NewServerWithDeps(testConfig(), db, nil)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
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
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func doJSONList(t *testing.T, app *fiber.App, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, app *fiber.App, name, email string) (string, uint) {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register failed: %v", body)
	return body["token"].(string), uint(body["id"].(float64))
}
