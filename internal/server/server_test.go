package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0hammad-yasin/portfolio/internal/config"
	"github.com/M0hammad-yasin/portfolio/internal/content"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Mode = gin.TestMode

	store, err := content.NewStore("")
	require.NoError(t, err)

	s, err := New(cfg, store)
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func contactRequest(values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func validValues() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Loved the projects."},
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestIndexRendersEverySection(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	for _, id := range []string{"hero", "about", "skills", "projects", "experience", "contact"} {
		assert.Contains(t, html, `<section id="`+id+`"`)
	}
	for _, label := range []string{"About", "Skills", "Projects", "Experience", "Contact"} {
		assert.Contains(t, html, `>`+label+`</a>`)
	}
	assert.Contains(t, html, "Muhammad Yasin")
	assert.Contains(t, html, "Online Educator")
	assert.Contains(t, html, `href="mailto:mohdysn111@gmail.com"`)
	assert.Contains(t, html, `data-sections="hero,about,skills,projects,experience,contact"`)
	assert.Contains(t, html, `data-theme="dark"`)
	assert.NotContains(t, html, `class="toast"`)
}

func TestIndexThemeFromCookie(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})

	w := do(t, s, req)
	assert.Contains(t, w.Body.String(), `data-theme="light"`)
}

func TestContactFormFragment(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/contact-form", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="contact-form"`)
	assert.NotContains(t, body, "<html")

	// Empty fields never reach the handler: the browser blocks the submit.
	for _, field := range []string{"name", "email", "subject", "message"} {
		re := regexp.MustCompile(`<(input|textarea)[^>]*name="` + field + `"[^>]*>`)
		tag := re.FindString(body)
		require.NotEmpty(t, tag, field)
		assert.Contains(t, tag, " required", field)
	}
	assert.Regexp(t, `<input[^>]*name="email"[^>]*type="email"`, body)
}

func TestContactHTMXAcknowledgesOnce(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, contactRequest(validValues(), true))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="toast"`))
	assert.Contains(t, body, "Message sent!")
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.NotContains(t, body, "<html", "no full page reload")
	assert.NotContains(t, body, "Ada", "fields are cleared")
	assert.NotContains(t, body, "Loved the projects.")
}

func TestContactHTMXRejectsMissingField(t *testing.T) {
	s := newTestServer(t)
	values := validValues()
	values.Set("subject", "  ")

	w := do(t, s, contactRequest(values, true))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, `class="toast"`)
	assert.Contains(t, body, "Please fill in your subject.")
	assert.Contains(t, body, `value="Ada"`, "submitted values are kept")
}

func TestContactTrimsBeforeValidating(t *testing.T) {
	s := newTestServer(t)
	values := validValues()
	values.Set("email", "  ada@example.com  ")
	values.Set("name", " Ada ")

	w := do(t, s, contactRequest(values, true))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent!")

	values.Set("message", "\n\t ")
	w = do(t, s, contactRequest(values, true))
	assert.NotContains(t, w.Body.String(), `class="toast"`)
	assert.Contains(t, w.Body.String(), "Please fill in your message.")
}

func TestContactWithoutHTMXRendersPage(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, contactRequest(validValues(), false))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), `class="toast"`))
	assert.Contains(t, w.Body.String(), "<html")

	bad := validValues()
	bad.Set("email", "nope")
	w = do(t, s, contactRequest(bad, false))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotContains(t, w.Body.String(), `class="toast"`)
	assert.Contains(t, w.Body.String(), "Please enter a valid email address.")
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/static/js/live.js", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "WebSocket")
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Fallback = "nearest"
	_, err := New(cfg, content.NewStaticStore(nil))
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mode = gin.TestMode
	cfg.Addr = "127.0.0.1:0"
	store, err := content.NewStore("")
	require.NoError(t, err)
	s, err := New(cfg, store)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHashIP(t *testing.T) {
	a := hashIP("salt", "10.0.0.1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("salt", "10.0.0.1"))
	assert.NotEqual(t, a, hashIP("other", "10.0.0.1"))
}
