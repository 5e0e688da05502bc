package studentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lingo/config"
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/models/catalog"
	orderModels "lingo/models/order"
	studentRoutes "lingo/routers/studentRoutes"
	"lingo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:studentdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	studentRoutes.SetupStudentRoutes(app)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:     "Rahul Verma",
		Email:    uuid.NewString() + "@example.com",
		Role:     role,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedCourse(t *testing.T, db *gorm.DB, lectures int) catalog.Course {
	t.Helper()
	course := catalog.Course{
		PublicID:       uuid.NewString(),
		Title:          "Spoken English Mastery",
		Category:       "English",
		Level:          "Intermediate",
		Price:          799,
		InstructorID:   7,
		InstructorName: "Meera Iyer",
		IsPublished:    true,
	}
	for i := 0; i < lectures; i++ {
		course.Curriculum = append(course.Curriculum, catalog.Lecture{
			PublicID:   uuid.NewString(),
			Title:      fmt.Sprintf("Lesson %d", i+1),
			OrderIndex: i,
		})
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

// entitle grants the user access to the course and derives a fresh
// progress record, the same way a captured order would
func entitle(t *testing.T, db *gorm.DB, user models.User, course catalog.Course) models.ProgressRecord {
	t.Helper()
	line := orderModels.OrderLine{
		ItemID:         course.PublicID,
		ItemType:       models.ItemTypeCourse,
		Title:          course.Title,
		Price:          course.Price,
		InstructorID:   course.InstructorID,
		InstructorName: course.InstructorName,
	}
	require.NoError(t, utils.GrantEntitlement(db, user.ID, line))
	require.NoError(t, utils.EnsureProgressRecord(db, user.ID, course.PublicID))

	var record models.ProgressRecord
	require.NoError(t, db.Preload("Lectures", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Where("user_id = ? AND course_id = ?", user.ID, course.PublicID).First(&record).Error)
	return record
}

func markViewed(t *testing.T, db *gorm.DB, record models.ProgressRecord, indexes ...int) {
	t.Helper()
	now := time.Now()
	for _, i := range indexes {
		lecture := record.Lectures[i]
		require.NoError(t, db.Model(&lecture).
			Updates(map[string]interface{}{"viewed": true, "date_viewed": now}).Error)
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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

func progressPath(course catalog.Course) string {
	return "/courses/" + course.PublicID + "/progress"
}

func TestGetProgressRequiresEntitlement(t *testing.T) {
	app, db := setupTest(t)
	_, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)

	status, _ := doRequest(t, app, "GET", progressPath(course), token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestResumePointerStaysAtFirstGap(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 4)
	record := entitle(t, db, user, course)

	// Lessons 1, 2 and 4 viewed; resume must point at lesson 3
	markViewed(t, db, record, 0, 1, 3)

	status, resp := doRequest(t, app, "GET", progressPath(course), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, course.Curriculum[2].PublicID, data["resumeLectureId"])
}

func TestResumePointerStartsAtFirstLecture(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 3)
	entitle(t, db, user, course)

	status, resp := doRequest(t, app, "GET", progressPath(course), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, course.Curriculum[0].PublicID, data["resumeLectureId"])
}

func TestGetProgressForOtherUserForbidden(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	other, _ := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)
	entitle(t, db, user, course)

	path := fmt.Sprintf("%s?userId=%d", progressPath(course), other.ID)
	status, _ := doRequest(t, app, "GET", path, token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestGetProgressRederivesMissingRecord(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 3)

	// Entitled but the progress write never landed; the read must repair it
	line := orderModels.OrderLine{ItemID: course.PublicID, ItemType: models.ItemTypeCourse, Title: course.Title}
	require.NoError(t, utils.GrantEntitlement(db, user.ID, line))

	status, resp := doRequest(t, app, "GET", progressPath(course), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	progress := data["progress"].(map[string]interface{})
	lectures := progress["lectures"].([]interface{})
	assert.Len(t, lectures, 3)

	var records int64
	db.Model(&models.ProgressRecord{}).Where("user_id = ?", user.ID).Count(&records)
	assert.Equal(t, int64(1), records)
}

func TestMarkLectureViewedRequiresEntitlement(t *testing.T) {
	app, db := setupTest(t)
	_, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)

	path := progressPath(course) + "/lectures/" + course.Curriculum[0].PublicID + "/viewed"
	status, _ := doRequest(t, app, "POST", path, token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMarkLectureViewedUnknownLecture(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)
	entitle(t, db, user, course)

	path := progressPath(course) + "/lectures/" + uuid.NewString() + "/viewed"
	status, _ := doRequest(t, app, "POST", path, token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMarkLectureViewedCompletesCourse(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)
	entitle(t, db, user, course)

	first := progressPath(course) + "/lectures/" + course.Curriculum[0].PublicID + "/viewed"
	status, resp := doRequest(t, app, "POST", first, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	progress := resp["data"].(map[string]interface{})["progress"].(map[string]interface{})
	assert.False(t, progress["completed"].(bool))

	second := progressPath(course) + "/lectures/" + course.Curriculum[1].PublicID + "/viewed"
	status, resp = doRequest(t, app, "POST", second, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	progress = resp["data"].(map[string]interface{})["progress"].(map[string]interface{})
	assert.True(t, progress["completed"].(bool))
	assert.Equal(t, "", resp["data"].(map[string]interface{})["resumeLectureId"])

	var record models.ProgressRecord
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.PublicID).First(&record).Error)
	assert.True(t, record.Completed)
}

func TestMarkLectureViewedIsIdempotent(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 2)
	entitle(t, db, user, course)

	path := progressPath(course) + "/lectures/" + course.Curriculum[0].PublicID + "/viewed"
	status, _ := doRequest(t, app, "POST", path, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var before models.LectureProgress
	require.NoError(t, db.Where("lecture_id = ?", course.Curriculum[0].PublicID).First(&before).Error)
	require.NotNil(t, before.DateViewed)

	status, _ = doRequest(t, app, "POST", path, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	// The original view timestamp survives a replay
	var after models.LectureProgress
	require.NoError(t, db.Where("lecture_id = ?", course.Curriculum[0].PublicID).First(&after).Error)
	require.NotNil(t, after.DateViewed)
	assert.Equal(t, before.DateViewed.Unix(), after.DateViewed.Unix())
}

func TestResetCourseProgress(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")
	course := seedCourse(t, db, 3)
	record := entitle(t, db, user, course)

	markViewed(t, db, record, 0, 1, 2)
	require.NoError(t, db.Model(&record).Update("completed", true).Error)

	status, resp := doRequest(t, app, "POST", progressPath(course)+"/reset", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	progress := data["progress"].(map[string]interface{})
	assert.False(t, progress["completed"].(bool))
	assert.Equal(t, course.Curriculum[0].PublicID, data["resumeLectureId"])

	var lectures []models.LectureProgress
	require.NoError(t, db.Where("progress_record_id = ?", record.ID).Find(&lectures).Error)
	require.Len(t, lectures, 3)
	for _, lecture := range lectures {
		assert.False(t, lecture.Viewed)
		assert.Nil(t, lecture.DateViewed)
	}
}

func TestGetEntitlementsFiltersByType(t *testing.T) {
	app, db := setupTest(t)
	user, token := seedUser(t, db, "USER")

	require.NoError(t, utils.UpsertEnrollmentProjection(db, user.ID,
		orderModels.OrderLine{ItemID: uuid.NewString(), ItemType: models.ItemTypeCourse, Title: "A Course"}))
	require.NoError(t, utils.UpsertEnrollmentProjection(db, user.ID,
		orderModels.OrderLine{ItemID: uuid.NewString(), ItemType: models.ItemTypeTestSeries, Title: "A Series"}))

	path := fmt.Sprintf("/users/%d/entitlements?type=Course", user.ID)
	status, resp := doRequest(t, app, "GET", path, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	entitlements := resp["data"].(map[string]interface{})["entitlements"].([]interface{})
	require.Len(t, entitlements, 1)
	assert.Equal(t, models.ItemTypeCourse, entitlements[0].(map[string]interface{})["item_type"])
}

func TestGetEntitlementsOfOtherUserForbidden(t *testing.T) {
	app, db := setupTest(t)
	_, token := seedUser(t, db, "USER")
	other, _ := seedUser(t, db, "USER")

	path := fmt.Sprintf("/users/%d/entitlements", other.ID)
	status, _ := doRequest(t, app, "GET", path, token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAdminCanListAnyEntitlements(t *testing.T) {
	app, db := setupTest(t)
	user, _ := seedUser(t, db, "USER")
	_, adminToken := seedUser(t, db, "ADMIN")

	require.NoError(t, utils.UpsertEnrollmentProjection(db, user.ID,
		orderModels.OrderLine{ItemID: uuid.NewString(), ItemType: models.ItemTypeCourse, Title: "A Course"}))

	path := fmt.Sprintf("/users/%d/entitlements", user.ID)
	status, resp := doRequest(t, app, "GET", path, adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	entitlements := resp["data"].(map[string]interface{})["entitlements"].([]interface{})
	assert.Len(t, entitlements, 1)
}
