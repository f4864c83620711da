package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "tutortrack_backend/internals/databases"
	studentModel "tutortrack_backend/internals/features/students/model"
	feeModel "tutortrack_backend/internals/features/studentfees/model"
	feeRoutes "tutortrack_backend/internals/features/studentfees/routes"
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
	feeRoutes.StudentFeeRoutes(app.Group("/api"), db)
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

func TestSetFeeCreatesThenUpdates(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	payload := fiber.Map{"studentId": sid, "month": "August", "year": 2026, "amount": 1800}
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/student-fees", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// periode sama lagi → update, bukan row kedua
	payload["amount"] = 1500
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/student-fees", payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fees []feeModel.StudentFeeModel
	require.NoError(t, db.Find(&fees).Error)
	require.Len(t, fees, 1, "upsert tidak boleh menggandakan periode")
	assert.Equal(t, 1500, fees[0].StudentFeeAmount)
}

func TestSetFeeZeroAmountAllowed(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/student-fees", fiber.Map{
		"studentId": sid, "month": "August", "year": 2026, "amount": 0,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["amount"])
}

func TestSetFeeUnknownStudent(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/student-fees", fiber.Map{
		"studentId": 999, "month": "August", "year": 2026, "amount": 100,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSetFeeInvalidMonth(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/student-fees", fiber.Map{
		"studentId": sid, "month": "Agustus", "year": 2026, "amount": 100,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteFeeRestoresDefault(t *testing.T) {
	app, db := newTestApp(t)
	sid := seedStudent(t, db)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/student-fees", fiber.Map{
		"studentId": sid, "month": "August", "year": 2026, "amount": 1800,
	})
	feeID := int(body["data"].(map[string]any)["id"].(float64))

	req := httptest.NewRequest(fiber.MethodDelete, "/api/student-fees/"+strconv.Itoa(feeID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&feeModel.StudentFeeModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
