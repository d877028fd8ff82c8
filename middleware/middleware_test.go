package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"botgate/internal/config"
	"botgate/internal/dataType"
	"botgate/internal/geo"
	"botgate/internal/ratelimit"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.UserBehavior = dataType.UserSamePage
	cfg.LogPath = filepath.Join(dir, "log")
	cfg.Paths.AgentsBlacklist = filepath.Join(dir, "agents.txt")
	cfg.Paths.IPsBlacklist = filepath.Join(dir, "ips.txt")
	cfg.Paths.IPsRangeBlacklist = filepath.Join(dir, "ranges.txt")
	cfg.Paths.RequestLog = filepath.Join(dir, "request_log.json")
	cfg.Paths.Logs = filepath.Join(dir, "bots_log.txt")
	cfg.Paths.Visits = filepath.Join(dir, "visits_log.txt")
	return cfg
}

func testMiddleware(t *testing.T, cfg *config.Config) *Middleware {
	t.Helper()
	provider := geo.ProviderFunc(func(ip string) (geo.Record, error) {
		return geo.Record{Status: "success", CountryCode: "IQ", Country: "Iraq", City: "Baghdad", Query: ip}, nil
	})
	m, err := New(Options{
		Config:    cfg,
		RateStore: ratelimit.NewMemoryStore(),
		Geo:       provider,
	})
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return m
}

func TestHTTPMiddlewarePassesBrowserThrough(t *testing.T) {
	m := testMiddleware(t, testConfig(t))

	reached := false
	handler := m.HTTP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/?redir=1", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/125.0")
	r.Header.Set("Accept", "text/html")
	r.RemoteAddr = "203.0.113.9:40000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if !reached || w.Code != http.StatusOK {
		t.Errorf("browser request should reach the handler, code=%d reached=%v", w.Code, reached)
	}
}

func TestHTTPMiddlewareBlocksToolAgents(t *testing.T) {
	m := testMiddleware(t, testConfig(t))

	handler := m.HTTP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("blocked request must not reach the handler")
	}))

	r := httptest.NewRequest("GET", "/?redir=1", nil)
	r.Header.Set("User-Agent", "curl/7.68.0")
	r.Header.Set("Accept", "*/*")
	r.RemoteAddr = "203.0.113.9:40000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("default exit behavior renders 404, got %d", w.Code)
	}
}

func TestHTTPMiddlewareRedirectsLegitimateUsers(t *testing.T) {
	cfg := testConfig(t)
	cfg.UserBehavior = dataType.UserRedirect
	cfg.UserRedirect = "https://example.com/app"
	m := testMiddleware(t, cfg)

	handler := m.HTTP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("redirected request must not reach the handler")
	}))

	r := httptest.NewRequest("GET", "/?redir=1", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/125.0")
	r.Header.Set("Accept", "text/html")
	r.RemoteAddr = "203.0.113.9:40000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://example.com/app" {
		t.Errorf("location = %q", loc)
	}
}
