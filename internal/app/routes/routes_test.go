package routes

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fake "github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amdaops-http-service/internal/app/middleware"
	"amdaops-http-service/internal/domain/services"
	"amdaops-http-service/internal/domain/services/container"
	"amdaops-http-service/internal/error/code"
	"amdaops-http-service/internal/infrastructure/config"
)

const bankForDefault = `[
  {"site":"ShoppingCenter","name":"Default Shopping Center","address":"123 Main Street","cat":"Patrol","hotwords":["door"],"en":"Check the door","es":"Revise la puerta"},
  {"site":"ShoppingCenter","name":"Default Shopping Center","address":"123 Main Street","cat":"Access","hotwords":["badge"],"en":"Show your badge","es":"Muestre su credencial"},
  {"site":"Office","name":"Elsewhere","address":"1 Other St","cat":"Patrol","hotwords":["door"],"en":"Lock the door","es":"Cierre la puerta"}
]`

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	cfg    *config.Config
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.PurgeCache()

	dir := t.TempDir()
	cfg := &config.Config{
		GinMode:            gin.TestMode,
		DataDir:            dir,
		PhotosDir:          filepath.Join(dir, "officers_photos"),
		PhrasesFile:        "phrases.json",
		RegistryFile:       "site_registry.json",
		OfficersFile:       "security_officers.json",
		SchedulesFile:      "work_schedules.json",
		TimeLogsFile:       "time_logs.json",
		MaxPhotoBytes:      5 << 20,
		RateLimitPerSecond: 10000,
		RateLimitBurst:     10000,

		UploadRateLimitPerSecond: 10000,
		UploadRateLimitBurst:     10000,
	}
	c := container.NewServiceContainer(cfg)
	_, err := c.GetService("registry").(services.InterfaceRegistryService).EnsureRegistry()
	require.NoError(t, err)

	return &testServer{t: t, cfg: cfg, router: SetupRouter(cfg, c)}
}

func (s *testServer) do(method, target string, body []byte, contentType string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) json(method, target string, v interface{}) (*httptest.ResponseRecorder, envelope) {
	raw, err := json.Marshal(v)
	require.NoError(s.t, err)
	return s.do(method, target, raw, "application/json")
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func multipartBody(t *testing.T, fields map[string]string, photoName string) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photoName != "" {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
		img.Set(0, 0, color.NRGBA{G: 255, A: 255})
		fw, err := mw.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		require.NoError(t, png.Encode(fw, img))
	}
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/api/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, code.ErrSuccess, env.Code)
	assert.Contains(t, string(env.Data), "pong")
}

func TestSiteLifecycle(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(http.MethodGet, "/api/sites/prefixes", nil, "")
	var prefixes []string
	decode(t, env.Data, &prefixes)
	assert.Equal(t, []string{"DEFAULT"}, prefixes)

	site := map[string]interface{}{
		"prefix": "NM1", "name": "North Mall", "address": "1 North Rd",
		"city": "Reno", "state": "NV", "zip": "89501", "badge_color": "blue",
	}
	w, env := s.json(http.MethodPost, "/api/sites", site)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var saved map[string]interface{}
	decode(t, env.Data, &saved)
	assert.Equal(t, "blue", saved["badge_color"])
	assert.Equal(t, "1 hour", saved["patrol_frequency"])

	// cached list must reflect the write
	_, env = s.do(http.MethodGet, "/api/sites/prefixes", nil, "")
	decode(t, env.Data, &prefixes)
	assert.Equal(t, []string{"DEFAULT", "NM1"}, prefixes)

	site["prefix"] = "NM2"
	w, _ = s.json(http.MethodPut, "/api/sites/NM1", site)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = s.do(http.MethodGet, "/api/sites/NM1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrSiteNotFound, env.Code)

	// null 删除未建模字段
	site["badge_color"] = nil
	w, _ = s.json(http.MethodPut, "/api/sites/NM2", site)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, env = s.do(http.MethodGet, "/api/sites/NM2", nil, "")
	saved = nil
	decode(t, env.Data, &saved)
	assert.NotContains(t, saved, "badge_color")

	w, _ = s.do(http.MethodDelete, "/api/sites/NM2", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSiteValidationError(t *testing.T) {
	s := newTestServer(t)
	w, env := s.json(http.MethodPost, "/api/sites", map[string]string{"prefix": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrSiteInvalid, env.Code)
	assert.Contains(t, env.Message, "name")
}

func TestOfficerLifecycleWithPhoto(t *testing.T) {
	s := newTestServer(t)
	name := fake.FirstName() + " " + fake.LastName()

	body, ct := multipartBody(t, map[string]string{"name": name, "email": fake.Email()}, "face.png")
	w, env := s.do(http.MethodPost, "/api/officers", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created services.OfficerView
	decode(t, env.Data, &created)
	assert.True(t, created.HasPhoto)
	assert.Len(t, created.Initials, 2)
	assert.Contains(t, services.AvatarPalette, created.AvatarColor)

	w, _ = s.do(http.MethodGet, "/api/officers/"+created.ID+"/photo", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	_, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)

	body, ct = multipartBody(t, map[string]string{"name": name, "phone": fake.Phone(), "remove_photo": "on"}, "")
	w, env = s.do(http.MethodPut, "/api/officers/"+created.ID, body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated services.OfficerView
	decode(t, env.Data, &updated)
	assert.False(t, updated.HasPhoto)
	assert.Empty(t, updated.PhotoPath)

	w, env = s.do(http.MethodGet, "/api/officers/"+created.ID+"/photo", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrPhotoNotFound, env.Code)

	w, _ = s.do(http.MethodDelete, "/api/officers/"+created.ID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(http.MethodGet, "/api/officers/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrOfficerNotFound, env.Code)
}

func TestOfficerRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	body, ct := multipartBody(t, map[string]string{"name": fake.Name()}, "")
	w, env := s.do(http.MethodPost, "/api/officers", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrOfficerInvalid, env.Code)

	body, ct = multipartBody(t, map[string]string{"name": fake.Name(), "email": fake.Email()}, "face.bmp")
	w, env = s.do(http.MethodPost, "/api/officers", body, ct)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, code.ErrPhotoUnsupported, env.Code)

	// JSON bodies work too when no photo is attached
	w, _ = s.json(http.MethodPost, "/api/officers", map[string]string{"name": fake.Name(), "phone": fake.Phone()})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPhraseEndpoints(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(s.cfg.PhrasesPath(), []byte(bankForDefault), 0644))

	_, env := s.do(http.MethodGet, "/api/phrases/facets?prefix=DEFAULT", nil, "")
	var facets services.PhraseFacets
	decode(t, env.Data, &facets)
	assert.Equal(t, []string{"Access", "Patrol"}, facets.Categories)
	assert.Equal(t, []string{"badge", "door"}, facets.Hotwords)

	_, env = s.do(http.MethodGet, "/api/phrases/search?prefix=DEFAULT&hotword=DOOR", nil, "")
	var search struct {
		Total int `json:"total"`
		Limit int `json:"limit"`
	}
	decode(t, env.Data, &search)
	assert.Equal(t, 1, search.Total)
	assert.Equal(t, 10, search.Limit)

	w, env := s.json(http.MethodPost, "/api/phrases", map[string]string{
		"prefix": "DEFAULT", "cat": "Safety", "hotwords": "Fire, EXIT", "en": "Use the fire exit", "es": "Use la salida de emergencia",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// the cached facets are purged by the write
	_, env = s.do(http.MethodGet, "/api/phrases/facets?prefix=DEFAULT", nil, "")
	decode(t, env.Data, &facets)
	assert.Equal(t, []string{"Access", "Patrol", "Safety"}, facets.Categories)

	_, env = s.do(http.MethodGet, "/api/phrases?page=1", nil, "")
	var page struct {
		Total int `json:"total"`
	}
	decode(t, env.Data, &page)
	assert.Equal(t, 4, page.Total)

	w, env = s.do(http.MethodGet, "/api/phrases/search?prefix=NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrSiteNotFound, env.Code)
}

func TestPhraseBankMissing(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/api/phrases/facets?prefix=DEFAULT", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, code.ErrPhraseBankMissing, env.Code)
}

func TestSchedulesAndDashboard(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.json(http.MethodPost, "/api/schedules", map[string]string{"site_prefix": "DEFAULT", "shift": "night"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = s.json(http.MethodPost, "/api/schedules", map[string]string{"site_prefix": "OTHER"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.json(http.MethodPost, "/api/time-logs", map[string]string{"site_prefix": "DEFAULT", "hours": "8"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, env := s.do(http.MethodGet, "/api/schedules?site_prefix=DEFAULT", nil, "")
	var list struct {
		Total int `json:"total"`
	}
	decode(t, env.Data, &list)
	assert.Equal(t, 1, list.Total)

	w, _ = s.json(http.MethodPost, "/api/schedules", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct := multipartBody(t, map[string]string{"name": fake.Name(), "email": fake.Email()}, "")
	w, _ = s.do(http.MethodPost, "/api/officers", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	_, env = s.do(http.MethodGet, "/api/dashboard", nil, "")
	var dash struct {
		Prefixes       []string          `json:"prefixes"`
		SelectedPrefix string            `json:"selected_prefix"`
		Site           map[string]string `json:"site"`
		Stats          struct {
			ActiveOfficers int `json:"active_officers"`
			TotalSchedules int `json:"total_schedules"`
		} `json:"stats"`
	}
	decode(t, env.Data, &dash)
	assert.Equal(t, "DEFAULT", dash.SelectedPrefix)
	assert.Equal(t, "https://maps.google.com", dash.Site["maps_link"])
	assert.Equal(t, 1, dash.Stats.ActiveOfficers)
	assert.Equal(t, 2, dash.Stats.TotalSchedules)

	w, _ = s.do(http.MethodGet, "/api/dashboard?prefix=NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceholderPages(t *testing.T) {
	s := newTestServer(t)
	for _, page := range []string{"work-scheduling", "time-tracking"} {
		w, env := s.do(http.MethodGet, "/api/pages/"+page+"?prefix=DEFAULT", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var data map[string]interface{}
		decode(t, env.Data, &data)
		assert.Equal(t, true, data["placeholder"])
		assert.Equal(t, "DEFAULT", data["site_prefix"])
	}
}
