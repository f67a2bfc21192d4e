package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerServesLandingPage(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `id="demoForm"`) {
		t.Fatalf("expected contact form in landing page")
	}
}

func TestScriptSequencesSubmitThenConfig(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/script.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	script := rec.Body.String()
	submit := strings.Index(script, `fetch("/api/submit"`)
	cfg := strings.Index(script, `fetch("/api/vapi-config")`)
	if submit < 0 || cfg < 0 || submit > cfg {
		t.Fatalf("expected submit call before config call")
	}
	if !strings.Contains(script, `document.querySelector("vapi-widget")`) {
		t.Fatalf("expected single-instance widget guard")
	}
}

func TestHandlerUnknownAsset(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.js", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
