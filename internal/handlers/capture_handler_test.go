package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracking-jobs/backend/internal/database"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds the production router over an in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewRouter(db, nil), db
}

func createUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{ID: id, Email: id + "@example.com"}).Error)
}

func doJSON(r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCaptureEndToEnd(t *testing.T) {
	r, db := newTestServer(t)
	createUser(t, db, "u1")

	payload := map[string]string{
		"user_id":     "u1",
		"title":       "Backend Engineer",
		"company":     "Acme",
		"external_id": "123",
	}

	w := doJSON(r, http.MethodPost, "/api/jobs/capture", "", payload)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Job captured successfully", body["message"])

	job := body["job"].(map[string]interface{})
	assert.Equal(t, "applied", job["status"])
	assert.Equal(t, time.Now().Format(models.DateLayout), job["applied_date"])

	// A second identical capture conflicts and stores nothing new.
	w = doJSON(r, http.MethodPost, "/api/jobs/capture", "", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Job already exists for this user", decodeBody(t, w)["error"])

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCaptureMissingRequiredFields(t *testing.T) {
	r, db := newTestServer(t)
	createUser(t, db, "u1")

	w := doJSON(r, http.MethodPost, "/api/jobs/capture", "", map[string]string{
		"title": "Backend Engineer",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: user_id, title, company", decodeBody(t, w)["error"])
}

func TestCaptureInvalidUserID(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/jobs/capture", "", map[string]string{
		"user_id": "nobody",
		"title":   "Backend Engineer",
		"company": "Acme",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user ID", decodeBody(t, w)["error"])
}

func TestCaptureMalformedBody(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/capture", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
}

func TestCapturePreflight(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs/capture", nil)
	req.Header.Set("Origin", "chrome-extension://abcdef")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
