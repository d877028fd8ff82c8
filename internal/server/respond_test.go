package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"botgate/internal/action"
	"botgate/internal/config"
	"botgate/internal/dataType"
)

func blockVerdict(exit string) action.Verdict {
	return action.Verdict{Allowed: false, Reason: "test", Exit: exit}
}

func TestWriteVerdictNotFoundPage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NotFoundPage.Heading = "Nothing Here"
	cfg.NotFoundPage.AccentColor = "#ff0000"

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	WriteVerdict(w, r, cfg, blockVerdict(dataType.ExitNotFound))

	if w.Code != 404 {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Nothing Here") {
		t.Errorf("configured heading missing from page")
	}
	if !strings.Contains(body, "#ff0000") {
		t.Errorf("configured accent color missing from page")
	}
}

func TestWriteVerdictForbidden(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	WriteVerdict(w, r, config.DefaultConfig(), blockVerdict(dataType.ExitForbidden))

	if w.Code != 403 {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "403 Forbidden") {
		t.Errorf("forbidden page body missing")
	}
}

func TestWriteVerdictCaptchaForm(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	WriteVerdict(w, r, config.DefaultConfig(), blockVerdict(dataType.ExitCaptcha))

	body := w.Body.String()
	if !strings.Contains(body, "captcha_answer") || !strings.Contains(body, "<form") {
		t.Errorf("captcha challenge form missing: %s", body)
	}
}

func TestWriteVerdictRedirectDefaultsLink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExitLink = ""

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	WriteVerdict(w, r, cfg, blockVerdict(dataType.ExitRedirect))

	if w.Code != 302 {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://google.com" {
		t.Errorf("empty exit_link must fall back to the neutral URL, got %q", loc)
	}
}

func TestProcessRequestDataQueryAndAccept(t *testing.T) {
	cfg := config.DefaultConfig()
	r := httptest.NewRequest("GET", "/landing?redir=x&b=2", nil)
	r.Header.Set("Accept", "text/html")
	r.Header.Set("User-Agent", "Mozilla/5.0")
	r.RemoteAddr = "198.51.100.7:33812"

	reqData := ProcessRequestData(cfg, r)
	if reqData.Query["redir"] != "x" || reqData.Query["b"] != "2" {
		t.Errorf("query not captured: %v", reqData.Query)
	}
	if reqData.Accept != "text/html" {
		t.Errorf("accept = %q", reqData.Accept)
	}
	if reqData.RemoteIP != "198.51.100.7" {
		t.Errorf("remote IP = %q", reqData.RemoteIP)
	}
	if reqData.Now == 0 {
		t.Errorf("snapshot must carry the request time")
	}
}
