package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lingo/config"
	"lingo/database"
	"lingo/models"
	authRoutes "lingo/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:authdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := make(map[string]interface{})
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

func TestSignupAndLogin(t *testing.T) {
	app, db := setupTest(t)

	status, resp := doRequest(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Kiran Patel",
		"email":    "kiran@example.com",
		"mobile":   "9876543210",
		"password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "USER", resp["data"].(map[string]interface{})["role"])

	// The stored password must be a hash, never the plaintext
	var user models.User
	require.NoError(t, db.Where("email = ?", "kiran@example.com").First(&user).Error)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	status, resp = doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "kiran@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["accessToken"])
	assert.Equal(t, "Kiran Patel", data["user"].(map[string]interface{})["name"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupTest(t)

	status, _ := doRequest(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Kiran Patel",
		"email":    "kiran@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "kiran@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupTest(t)

	payload := fiber.Map{
		"name":     "Kiran Patel",
		"email":    "kiran@example.com",
		"password": "s3cret-pass",
	}
	status, _ := doRequest(t, app, "POST", "/auth/signup", payload)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doRequest(t, app, "POST", "/auth/signup", payload)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestSignupAsInstructor(t *testing.T) {
	app, _ := setupTest(t)

	status, resp := doRequest(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Aiko Tanaka",
		"email":    "aiko@example.com",
		"password": "s3cret-pass",
		"role":     "INSTRUCTOR",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "INSTRUCTOR", resp["data"].(map[string]interface{})["role"])
}

func TestSignupRejectsAdminRole(t *testing.T) {
	app, db := setupTest(t)

	// Self-service signup can never mint an admin
	status, _ := doRequest(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "s3cret-pass",
		"role":     "ADMIN",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "mallory@example.com").Count(&count)
	assert.Equal(t, int64(0), count)
}
