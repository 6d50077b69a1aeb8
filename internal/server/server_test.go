package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shelterkin/alertkit/internal/config"
	"github.com/shelterkin/alertkit/internal/flash"
	"github.com/shelterkin/alertkit/internal/middleware"
	"github.com/shelterkin/alertkit/static"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Port:            0,
		LogLevel:        "info",
		BaseURL:         "http://localhost:8080",
		JQueryURL:       "/jquery.js",
		BootstrapCSSURL: "/bootstrap.css",
		FlashSecret:     "test-flash-secret",
		CSRFKey:         "exactly-32-characters-long!!!!!!",
	}
	return New(cfg, static.FS).Handler()
}

func TestHealth(t *testing.T) {
	srv := setupServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected 'ok', got %q", rec.Body.String())
	}
}

func TestServesDismissScript(t *testing.T) {
	srv := setupServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/static/js/alert.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "$.fn.alert") {
		t.Error("expected alert plugin source")
	}
}

func TestInlineScriptCarriesCSPNonce(t *testing.T) {
	srv := setupServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/alert?message=Bye&hide_after=2s", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	csp := rec.Header().Get("Content-Security-Policy")
	_, rest, ok := strings.Cut(csp, "'nonce-")
	if !ok {
		t.Fatalf("expected nonce in CSP, got %q", csp)
	}
	nonce, _, _ := strings.Cut(rest, "'")

	if !strings.Contains(rec.Body.String(), `<script nonce="`+nonce+`">`) {
		t.Errorf("expected inline script with nonce %q", nonce)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}
}

func TestAutoHideWithoutCloseLoadsDismissScript(t *testing.T) {
	srv := setupServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/alert?message=x&hide_after=3s&closable=false", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, `data-dismiss="alert"`) {
		t.Error("expected no close control")
	}
	if !strings.Contains(body, `.alert("close"); }, 3000);`) {
		t.Fatalf("expected auto-hide timer, got %s", body)
	}
	if !strings.Contains(body, `<script src="/static/js/alert.js"></script>`) {
		t.Error("expected the page to load the script that defines $.fn.alert")
	}
}

func TestPostNoticeRequiresCSRF(t *testing.T) {
	srv := setupServer(t)
	form := url.Values{"message": {"hi"}}
	req := postForm("/notices", form)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestNoticeRoundTrip(t *testing.T) {
	srv := setupServer(t)

	// load the index to obtain a csrf cookie
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if !strings.Contains(rec.Body.String(), `name="`+middleware.CSRFFieldName+`"`) {
		t.Fatal("expected notice form to use the csrf form field")
	}

	var csrfCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			csrfCookie = c
		}
	}
	if csrfCookie == nil {
		t.Fatal("expected csrf cookie")
	}

	form := url.Values{
		middleware.CSRFFieldName: {csrfCookie.Value},
		"level":                  {"WARNING"},
		"message":                {"Low disk space"},
	}
	req := postForm("/notices", form)
	req.AddCookie(csrfCookie)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	var flashCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			flashCookie = c
		}
	}
	if flashCookie == nil {
		t.Fatal("expected flash cookie")
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(csrfCookie)
	req.AddCookie(flashCookie)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `class="alert alert-block"><button`) || !strings.Contains(body, "Low disk space") {
		t.Errorf("expected warning flash alert, got %s", body)
	}
}
