package courseController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codequest/config"
	"codequest/database"
	"codequest/middleware"
	"codequest/models"
	courseModels "codequest/models/course"
	courseRoutes "codequest/routers/courseRoutes"

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
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T) (models.User, string) {
	user := models.User{
		Name:     "Test User",
		Email:    strings.ToLower(t.Name()) + "@codequest.dev",
		Password: "irrelevant",
		Level:    1,
		Role:     models.RoleUser,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, title string, moduleCount int) courseModels.Course {
	db := database.Database.Db

	course := courseModels.Course{
		Title:           title,
		Description:     "d",
		DifficultyLevel: "easy",
		Status:          courseModels.StatusActive,
		Category:        "backend",
	}
	require.NoError(t, db.Create(&course).Error)

	for i := 0; i < moduleCount; i++ {
		module := courseModels.Module{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("%s module %d", title, i),
			Description: "d",
			Content:     "c",
			OrderIndex:  i,
			Duration:    "5 min",
			XP:          50,
		}
		require.NoError(t, db.Create(&module).Error)
	}

	require.NoError(t, db.Preload("Modules").First(&course, course.ID).Error)
	return course
}

func completeModule(t *testing.T, userID, moduleID uint) {
	record := courseModels.CompletedModule{
		UserID:      userID,
		ModuleID:    moduleID,
		CompletedAt: time.Now(),
	}
	require.NoError(t, database.Database.Db.Create(&record).Error)
}

func getJSON(t *testing.T, app *fiber.App, url, token string) (int, map[string]interface{}) {
	req := httptest.NewRequest("GET", url, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestGetCourseProgress(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)
	course := createCourse(t, "Go Basics", 2)
	completeModule(t, user.ID, course.Modules[0].ID)

	status, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d/progress", course.ID), token)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_modules"])
	assert.Equal(t, float64(1), data["completed_modules"])
	assert.Equal(t, float64(50), data["percentage"])
}

func TestGetCourseProgressEmptyCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t)
	course := createCourse(t, "Empty", 0)

	status, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d/progress", course.ID), token)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_modules"])
	assert.Equal(t, float64(0), data["percentage"])
}

func TestGetUserProgress(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)

	courseA := createCourse(t, "Go Basics", 2)
	courseB := createCourse(t, "SQL", 1)
	createCourse(t, "Empty", 0)

	completeModule(t, user.ID, courseA.Modules[0].ID)
	completeModule(t, user.ID, courseB.Modules[0].ID)

	status, body := getJSON(t, app, "/api/courses/user-progress", token)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_courses"])
	// Only the fully-completed SQL course counts; the empty course never does
	assert.Equal(t, float64(1), data["completed_courses"])
	assert.Equal(t, float64(3), data["total_modules"])
	assert.Equal(t, float64(2), data["completed_modules"])
	assert.Equal(t, float64(67), data["percentage"])
}

func TestGetUserProgressIsReadOnly(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)
	course := createCourse(t, "Go Basics", 2)
	completeModule(t, user.ID, course.Modules[0].ID)

	_, first := getJSON(t, app, "/api/courses/user-progress", token)
	_, second := getJSON(t, app, "/api/courses/user-progress", token)
	assert.Equal(t, first, second)
}

func TestGetCourseModulesCompletionFlags(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)
	course := createCourse(t, "Go Basics", 2)
	completeModule(t, user.ID, course.Modules[0].ID)

	status, body := getJSON(t, app, fmt.Sprintf("/api/courses/%d/modules", course.ID), token)
	require.Equal(t, http.StatusOK, status)

	modules := body["data"].([]interface{})
	require.Len(t, modules, 2)

	first := modules[0].(map[string]interface{})
	second := modules[1].(map[string]interface{})
	assert.Equal(t, true, first["is_completed"])
	assert.Equal(t, false, second["is_completed"])
}

func TestGetCourseModuleWrongCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t)
	courseA := createCourse(t, "Go Basics", 1)
	courseB := createCourse(t, "SQL", 1)

	status, _ := getJSON(t, app,
		fmt.Sprintf("/api/courses/%d/modules/%d", courseB.ID, courseA.Modules[0].ID), token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetCourseProgressUnknownCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t)

	status, _ := getJSON(t, app, "/api/courses/9999/progress", token)
	assert.Equal(t, http.StatusNotFound, status)
}
