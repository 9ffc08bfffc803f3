package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"codequest/config"
	"codequest/database"
	authRoutes "codequest/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, payload fiber.Map) (int, map[string]interface{}) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestRegisterCreatesUser(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/register", fiber.Map{
		"name":     "Grace Hopper",
		"email":    "grace@codequest.dev",
		"password": "compilers",
	})
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "grace@codequest.dev", data["email"])
	assert.Equal(t, float64(1), data["level"])
	assert.Equal(t, float64(0), data["xp"])
	assert.Equal(t, "user", data["role"])
	// The password hash must never leak
	_, leaked := data["password"]
	assert.False(t, leaked)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	payload := fiber.Map{"name": "Grace", "email": "dup@codequest.dev", "password": "compilers"}

	status, _ := postJSON(t, app, "/api/register", payload)
	require.Equal(t, http.StatusCreated, status)

	status, body := postJSON(t, app, "/api/register", payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["status"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/register", fiber.Map{
		"name": "Grace", "email": "not-an-email", "password": "compilers",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = postJSON(t, app, "/api/register", fiber.Map{
		"name": "Grace", "email": "grace@codequest.dev", "password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/register", fiber.Map{
		"name": "Grace", "email": "login@codequest.dev", "password": "compilers",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := postJSON(t, app, "/api/login", fiber.Map{
		"email": "login@codequest.dev", "password": "compilers",
	})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "login@codequest.dev", user["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/register", fiber.Map{
		"name": "Grace", "email": "wrongpass@codequest.dev", "password": "compilers",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = postJSON(t, app, "/api/login", fiber.Map{
		"email": "wrongpass@codequest.dev", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/login", fiber.Map{
		"email": "ghost@codequest.dev", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
