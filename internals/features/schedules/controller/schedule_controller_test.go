package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "tutortrack_backend/internals/databases"
	scheduleModel "tutortrack_backend/internals/features/schedules/model"
	scheduleRoutes "tutortrack_backend/internals/features/schedules/routes"
	studentModel "tutortrack_backend/internals/features/students/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	scheduleRoutes.ScheduleRoutes(app.Group("/api"), db)
	return app, db
}

func seedStudent(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	s := studentModel.StudentModel{StudentName: "Aarav", StudentPhone: "1", StudentSubject: "Mathematics", StudentMonthlyFee: 2500, StudentStatus: "active"}
	require.NoError(t, db.Create(&s).Error)
	return s.StudentID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestCreateSchedule(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/schedules", fiber.Map{
		"studentId": sid,
		"dayOfWeek": "Monday",
		"startTime": "16:00",
		"endTime":   "17:00",
		"subject":   "Mathematics",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "16:00", data["startTime"])
	assert.Equal(t, "Monday", data["dayOfWeek"])
}

func TestCreateScheduleBadTime(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/schedules", fiber.Map{
		"studentId": sid,
		"dayOfWeek": "Monday",
		"startTime": "25:99",
		"endTime":   "17:00",
		"subject":   "Mathematics",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBulkCreateSchedulesRowErrors(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/schedules/bulk", []fiber.Map{
		{"studentId": sid, "dayOfWeek": "Monday", "startTime": "16:00", "endTime": "17:00", "subject": "Mathematics"},
		{"studentId": sid, "dayOfWeek": "Monday", "startTime": "25:99", "endTime": "17:00", "subject": "Mathematics"},
		{"studentId": sid, "dayOfWeek": "Friday", "startTime": "10:00", "endTime": "11:00", "subject": "Mathematics"},
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["created"])

	errs := data["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 2:")
	assert.Contains(t, errs[0], "startTime")

	var count int64
	require.NoError(t, db.Model(&scheduleModel.ScheduleModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "baris valid tetap tersimpan")
}

func TestBulkCreateSchedulesUnknownStudentRow(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/schedules/bulk", []fiber.Map{
		{"studentId": 9999, "dayOfWeek": "Monday", "startTime": "16:00", "endTime": "17:00", "subject": "Ghost"},
		{"studentId": sid, "dayOfWeek": "Tuesday", "startTime": "15:00", "endTime": "16:00", "subject": "Science"},
	})

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["created"])
	errs := data["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 1:")
}
