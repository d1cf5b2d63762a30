package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vowsnap-dev/vowsnap/db"
	"github.com/vowsnap-dev/vowsnap/internal/auth"
	"github.com/vowsnap-dev/vowsnap/internal/handlers"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"github.com/vowsnap-dev/vowsnap/internal/router"
	"github.com/vowsnap-dev/vowsnap/internal/store"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	stores *store.Store
	conn   *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	// AdminMiddleware reads the package-level handle directly.
	db.DB = conn

	require.NoError(t, auth.InitJWTSecret("test-secret"))

	stores := store.New(conn)
	verifier := auth.NewBcryptVerifier()
	handlers.Init(stores, verifier)

	hash, err := verifier.Hash("correct horse battery staple")
	require.NoError(t, err)

	admin := models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	}
	require.NoError(t, stores.Users.Create(&admin))

	return &testServer{
		router: router.NewRouter(),
		stores: stores,
		conn:   conn,
	}
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func (ts *testServer) createTemplate(t *testing.T, token, name, slug string) string {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/admin/templates", token, gin.H{
		"name": name,
		"slug": slug,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	template, ok := body["template"].(map[string]interface{})
	require.True(t, ok)

	templateID, ok := template["templateId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, templateID)
	return templateID
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid username or password", decode(t, rec)["error"])

	rec = ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/admin/templates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/admin/templates", "not-a-token", gin.H{
		"name": "X",
		"slug": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTemplateLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	// Guests resolve the wedding by slug.
	rec := ts.request(t, http.MethodGet, "/api/templates/slug/anna-ben", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	template := decode(t, rec)["template"].(map[string]interface{})
	assert.Equal(t, "Anna & Ben", template["name"])
	assert.Equal(t, templateID, template["templateId"])

	// Creation cascaded the default settings row.
	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decode(t, rec)["settings"].(map[string]interface{})
	assert.Equal(t, true, settings["isUnderConstruction"])

	rec = ts.request(t, http.MethodPatch, "/api/admin/templates/"+templateID, token, gin.H{
		"description": "Our big day",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	template = decode(t, rec)["template"].(map[string]interface{})
	assert.Equal(t, "Our big day", template["description"])

	rec = ts.request(t, http.MethodDelete, "/api/admin/templates/"+templateID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	// Soft delete: gone from the admin listing, still resolvable by id.
	rec = ts.request(t, http.MethodGet, "/api/admin/templates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	templates := decode(t, rec)["templates"].([]interface{})
	assert.Len(t, templates, 0)

	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTemplateNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/templates/template_unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Template not found", decode(t, rec)["error"])

	rec = ts.request(t, http.MethodGet, "/api/templates/slug/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuestNoteFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/media", "", gin.H{
		"type":       "note",
		"noteText":   "Congratulations!",
		"uploadedBy": "Ann",
		"deviceId":   "d1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	media := decode(t, rec)["media"].(map[string]interface{})
	assert.Equal(t, "Congratulations!", media["noteText"])
	assert.Equal(t, "", media["url"])
	assert.NotEmpty(t, media["uploadedAt"])

	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/media", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)["media"].([]interface{})
	assert.Len(t, list, 1)
}

func TestMediaValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	// A note without text.
	rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/media", "", gin.H{
		"type":       "note",
		"uploadedBy": "Ann",
		"deviceId":   "d1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An image without a url.
	rec = ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/media", "", gin.H{
		"type":       "image",
		"uploadedBy": "Ann",
		"deviceId":   "d1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An unknown type.
	rec = ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/media", "", gin.H{
		"type":       "gif",
		"url":        "https://cdn.example/x.gif",
		"uploadedBy": "Ann",
		"deviceId":   "d1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeToggleEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	toggle := func() map[string]interface{} {
		rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/likes/toggle", "", gin.H{
			"mediaId":  5,
			"userName": "Ann",
			"deviceId": "d1",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		return decode(t, rec)
	}

	first := toggle()
	assert.Equal(t, "added", first["action"])
	require.NotNil(t, first["like"])

	second := toggle()
	assert.Equal(t, "removed", second["action"])
	_, hasLike := second["like"]
	assert.False(t, hasLike)

	rec := ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/likes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	likes := decode(t, rec)["likes"].([]interface{})
	assert.Len(t, likes, 0)
}

func TestCommentFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/comments", "", gin.H{
		"mediaId":  3,
		"text":     "So lovely",
		"userName": "Ben",
		"deviceId": "d2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decode(t, rec)["comment"].(map[string]interface{})
	commentID := fmt.Sprintf("%.0f", comment["id"].(float64))

	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decode(t, rec)["comments"].([]interface{})
	assert.Len(t, comments, 1)

	rec = ts.request(t, http.MethodDelete, "/api/templates/"+templateID+"/comments/"+commentID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = ts.request(t, http.MethodDelete, "/api/templates/"+templateID+"/comments/"+commentID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCrossTenantMediaIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	firstID := ts.createTemplate(t, token, "First", "first")
	secondID := ts.createTemplate(t, token, "Second", "second")

	rec := ts.request(t, http.MethodPost, "/api/templates/"+firstID+"/media", "", gin.H{
		"type":       "image",
		"url":        "https://cdn.example/photo.jpg",
		"uploadedBy": "Ann",
		"deviceId":   "d1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	media := decode(t, rec)["media"].(map[string]interface{})
	mediaID := fmt.Sprintf("%.0f", media["id"].(float64))

	// The same numeric id through the wrong wedding resolves to nothing.
	rec = ts.request(t, http.MethodPatch, "/api/templates/"+secondID+"/media/"+mediaID, "", gin.H{
		"name": "stolen",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.request(t, http.MethodDelete, "/api/templates/"+secondID+"/media/"+mediaID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/templates/"+secondID+"/media", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["media"].([]interface{}), 0)
}

func TestStoryEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/stories", "", gin.H{
		"mediaUrl":  "https://cdn.example/story.jpg",
		"mediaType": "image",
		"userName":  "Ann",
		"deviceId":  "d1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	story := decode(t, rec)["story"].(map[string]interface{})
	storyID := fmt.Sprintf("%.0f", story["id"].(float64))

	expires, err := time.Parse(time.RFC3339, story["expiresAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expires, time.Minute)

	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/stories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["stories"].([]interface{}), 1)

	// Two views from one device count once.
	view := func(deviceID string) []interface{} {
		rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/stories/"+storyID+"/view", "", gin.H{
			"deviceId": deviceID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		viewed := decode(t, rec)["story"].(map[string]interface{})
		return viewed["views"].([]interface{})
	}

	assert.Len(t, view("viewer-1"), 1)
	assert.Len(t, view("viewer-1"), 1)
	assert.Len(t, view("viewer-2"), 2)
}

func TestStoryCleanupEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	expired := models.TemplateStory{
		TemplateID: templateID,
		MediaURL:   "https://cdn.example/old.jpg",
		MediaType:  "image",
		UserName:   "Ann",
		DeviceID:   "d1",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, ts.stores.Stories.Create(&expired))

	// Expired stories never surface even before cleanup runs.
	rec := ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/stories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["stories"].([]interface{}), 0)

	rec = ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/stories/cleanup", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["deletedCount"])

	rec = ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/stories/cleanup", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["deletedCount"])
}

func TestLiveUserEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/live-users", "", gin.H{
		"userName": "Ann",
		"deviceId": "d1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, true, user["isActive"])

	// A second heartbeat from the same device reuses the row.
	rec = ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/live-users", "", gin.H{
		"userName": "Annie",
		"deviceId": "d1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/live-users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode(t, rec)["users"].([]interface{})
	require.Len(t, users, 1)
	assert.Equal(t, "Annie", users[0].(map[string]interface{})["userName"])

	rec = ts.request(t, http.MethodPatch, "/api/templates/"+templateID+"/live-users/d1", "", gin.H{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodPatch, "/api/templates/"+templateID+"/live-users/ghost", "", gin.H{
		"isActive": false,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTimelineEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	create := func(title, date string) {
		rec := ts.request(t, http.MethodPost, "/api/templates/"+templateID+"/timeline", "", gin.H{
			"title":       title,
			"date":        date,
			"description": "event",
			"type":        "milestone",
			"createdBy":   "Ann",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	create("Ceremony", "2025-09-01")
	create("Engagement", "2024-05-01")

	rec := ts.request(t, http.MethodGet, "/api/templates/"+templateID+"/timeline", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode(t, rec)["events"].([]interface{})
	require.Len(t, events, 2)
	assert.Equal(t, "Engagement", events[0].(map[string]interface{})["title"])
	assert.Equal(t, "Ceremony", events[1].(map[string]interface{})["title"])
}

func TestSettingsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)
	templateID := ts.createTemplate(t, token, "Anna & Ben", "anna-ben")

	rec := ts.request(t, http.MethodPatch, "/api/templates/"+templateID+"/settings", "", gin.H{
		"isUnderConstruction": false,
		"updatedBy":           "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decode(t, rec)["settings"].(map[string]interface{})
	assert.Equal(t, false, settings["isUnderConstruction"])
	assert.Equal(t, "admin", settings["updatedBy"])

	// customSettings must be a JSON object.
	rec = ts.request(t, http.MethodPatch, "/api/templates/"+templateID+"/settings", "", gin.H{
		"customSettings": []string{"not", "an", "object"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/templates/template_unknown/settings", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomizationValidationOnCreate(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.request(t, http.MethodPost, "/api/admin/templates", token, gin.H{
		"name": "Anna & Ben",
		"slug": "anna-ben",
		"customization": gin.H{
			"version":      1,
			"primaryColor": "#aabbcc",
		},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/admin/templates", token, gin.H{
		"name": "Bad",
		"slug": "bad",
		"customization": gin.H{
			"version": 1,
			"bogus":   true,
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/admin/templates", token, gin.H{
		"name": "Worse",
		"slug": "worse",
		"customization": gin.H{
			"version": 99,
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAndMe(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.request(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "admin", me["username"])

	rec = ts.request(t, http.MethodPost, "/api/auth/register", token, gin.H{
		"username": "second",
		"password": "another-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate username.
	rec = ts.request(t, http.MethodPost, "/api/auth/register", token, gin.H{
		"username": "second",
		"password": "another-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Registration stays behind the admin gate.
	rec = ts.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "third",
		"password": "another-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
