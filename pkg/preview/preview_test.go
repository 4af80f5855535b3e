package preview

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bobbyhiddn/canvaskit/pkg/layout"
	"github.com/bobbyhiddn/canvaskit/pkg/render"
)

const testDoc = `
nodes:
  - id: a
    outputs: [b]
  - id: b
`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(path, layout.Horizontal, render.DefaultTheme(), log.New(os.Stderr)), path
}

func TestServer_ServesSVG(t *testing.T) {
	s, _ := newTestServer(t)
	if err := s.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/canvas.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /canvas.svg = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<svg") || !strings.Contains(body, ">a</text>") {
		t.Errorf("body is not the rendered canvas:\n%s", body)
	}
}

func TestServer_IndexPage(t *testing.T) {
	s, _ := newTestServer(t)
	if err := s.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `src="/canvas.svg"`) {
		t.Error("index page does not embed the canvas")
	}
	if !strings.Contains(body, "canvas.yaml") {
		t.Error("index page does not name the watched file")
	}
	if strings.Contains(body, `class="error"`) {
		t.Error("index page shows an error banner for a good document")
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestServer_KeepsLastGoodRenderingOnError(t *testing.T) {
	s, path := newTestServer(t)
	if err := s.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("nodes: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.render(); err == nil {
		t.Fatal("render() error = nil for malformed document")
	}

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/canvas.svg", nil))
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("previous rendering was dropped after a failed render")
	}

	rec = httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), `class="error"`) {
		t.Error("index page does not surface the render error")
	}
}
