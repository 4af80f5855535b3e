// Package preview serves a live-rendered view of a canvas document over
// HTTP, re-rendering whenever the file changes on disk.
package preview

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bobbyhiddn/canvaskit/pkg/document"
	"github.com/bobbyhiddn/canvaskit/pkg/layout"
	"github.com/bobbyhiddn/canvaskit/pkg/render"
)

// debounceDelay coalesces the burst of filesystem events editors emit on
// save into a single re-render.
const debounceDelay = 250 * time.Millisecond

// Server watches a canvas document and serves its SVG rendering.
type Server struct {
	path        string
	orientation layout.Orientation
	theme       render.Theme
	logger      *log.Logger

	mu      sync.RWMutex
	svg     []byte
	lastErr error
}

// New creates a preview server for the document at path. The logger is
// required; pass log.Default() for the package default.
func New(path string, orientation layout.Orientation, theme render.Theme, logger *log.Logger) *Server {
	return &Server{
		path:        path,
		orientation: orientation,
		theme:       theme,
		logger:      logger,
	}
}

// Run renders the document once, starts the file watcher, and serves HTTP
// on addr until ctx is canceled. The initial render must succeed; later
// renders may fail (a half-saved file, for instance) and keep serving the
// previous good rendering alongside the error.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.render(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that save via rename
	// replace the inode and would silently detach a file watch.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}
	go s.watch(ctx, watcher)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("preview listening", "addr", addr, "file", s.path)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(noCache)
	r.Get("/", s.handleIndex)
	r.Get("/canvas.svg", s.handleSVG)
	return r
}

// watch re-renders after each debounced change to the watched document.
func (s *Server) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounceDelay, func() { s.rerender() })
			} else {
				timer.Reset(debounceDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", "err", err)
		}
	}
}

func (s *Server) rerender() {
	start := time.Now()
	if err := s.render(); err != nil {
		s.logger.Warn("render failed", "err", err)
		return
	}
	s.logger.Info("re-rendered", "file", s.path, "took", time.Since(start).Round(time.Millisecond))
}

// render loads, organizes and renders the document, storing the result for
// the HTTP handlers.
func (s *Server) render() error {
	c, err := document.Load(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		return err
	}
	layout.Organize(c, c.Connections(), s.orientation)
	s.svg = render.RenderSVG(c, s.theme)
	return nil
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	svg := s.svg
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	lastErr := s.lastErr
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	banner := ""
	if lastErr != nil {
		banner = fmt.Sprintf(`<div class="error">%s</div>`, html.EscapeString(lastErr.Error()))
	}
	fmt.Fprintf(w, indexPage, html.EscapeString(filepath.Base(s.path)), banner)
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		next.ServeHTTP(w, r)
	})
}

// indexPage polls the SVG endpoint so edits show up without a manual
// reload. The first %s is the file name, the second an optional error
// banner.
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { margin: 0; background: #11111b; font-family: sans-serif; }
  .error { background: #f38ba8; color: #11111b; padding: 8px 16px; }
  img { display: block; max-width: 100vw; }
</style>
</head>
<body>
%s
<img id="canvas" src="/canvas.svg">
<script>
  setInterval(function () {
    var img = document.getElementById("canvas");
    img.src = "/canvas.svg?t=" + Date.now();
  }, 1000);
</script>
</body>
</html>
`
