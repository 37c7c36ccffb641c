package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlists/infrastructure/config"
	"superlists/logging"
	"superlists/test/helpers"
)

func newTestRouter(t *testing.T, csrf *config.CSRFConfig) http.Handler {
	t.Helper()

	store := helpers.NewTestDatabase(t)
	deps := buildDependencies(store, helpers.QuietLogger())
	cfg := &config.AppConfig{CSRF: csrf}

	return setupRoutes(deps, cfg)
}

func TestSetupRoutes_Health(t *testing.T) {
	router := newTestRouter(t, &config.CSRFConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "database")
}

type brokenResponseWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestSetupRoutes_HealthLogsEncodeFailure(t *testing.T) {
	var logs bytes.Buffer
	store := helpers.NewTestDatabase(t)
	deps := buildDependencies(store, logging.NewLoggerTo(&logs, &logging.Config{Level: "error", Format: "json"}))
	router := setupRoutes(deps, &config.AppConfig{CSRF: &config.CSRFConfig{}})

	router.ServeHTTP(brokenResponseWriter{httptest.NewRecorder()}, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, logs.String(), "Failed to encode health response")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestSetupRoutes_ServesPagesAndAssets(t *testing.T) {
	router := newTestRouter(t, &config.CSRFConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "yey, waktunya berlibur")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/app.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetupRoutes_CSRFRejectsTokenlessPost(t *testing.T) {
	router := newTestRouter(t, &config.CSRFConfig{AuthKey: []byte(strings.Repeat("k", 32))})

	form := url.Values{"item_text": {"Buy milk"}}
	req := httptest.NewRequest(http.MethodPost, "/lists/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

var csrfFieldPattern = regexp.MustCompile(`name="csrfmiddlewaretoken" value="([^"]+)"`)

func TestSetupRoutes_CSRFAcceptsTokenFromRenderedForm(t *testing.T) {
	router := newTestRouter(t, &config.CSRFConfig{AuthKey: []byte(strings.Repeat("k", 32))})

	page := httptest.NewRecorder()
	router.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)

	match := csrfFieldPattern.FindStringSubmatch(page.Body.String())
	require.Len(t, match, 2, "home form must carry the hidden token field")
	cookies := page.Result().Cookies()
	require.NotEmpty(t, cookies, "token cookie must be issued with the form")

	form := url.Values{"item_text": {"Buy milk"}, "csrfmiddlewaretoken": {match[1]}}
	req := httptest.NewRequest(http.MethodPost, "/lists/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Regexp(t, `^/lists/\d+/$`, rec.Header().Get("Location"))
}
