// Package server implements the icon preview server.
//
// The server renders ruler icons on demand: /icon.svg, /icon.png and
// /icon.json accept the same parameters as the generate command as
// query parameters, starting from a preset (default: "default").
// Rendered SVG and PNG artifacts are cached by parameter hash.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/logruler/pkg/cache"
	"github.com/matzehuels/logruler/pkg/observability"
	"github.com/matzehuels/logruler/pkg/preset"
	"github.com/matzehuels/logruler/pkg/render"
)

// Server serves rendered ruler icons over HTTP.
type Server struct {
	logger  *log.Logger
	svg     cache.Cache
	png     cache.Cache
	presets []preset.Preset
	ttl     time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the artifact cache backend. SVG and PNG responses are
// stored under separate key scopes on the same backend.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		s.svg = cache.Scoped(c, "svg:")
		s.png = cache.Scoped(c, "png:")
	}
}

// WithPresets adds file-defined presets on top of the built-ins.
func WithPresets(ps []preset.Preset) Option {
	return func(s *Server) { s.presets = ps }
}

// WithTTL sets the cache entry lifetime (default one hour).
func WithTTL(d time.Duration) Option {
	return func(s *Server) { s.ttl = d }
}

// New creates a Server. Caching is disabled unless WithCache is given.
func New(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		logger: logger,
		svg:    cache.NewNullCache(),
		png:    cache.NewNullCache(),
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/presets", s.handlePresets)
	r.Get("/icon.svg", s.handleSVG)
	r.Get("/icon.png", s.handlePNG)
	r.Get("/icon.json", s.handleJSON)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully. The returned error is ctx.Err() after a clean
// shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Infof("Preview server listening on http://%s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s%s (%s)", r.Method, r.URL.Path, querySuffix(r), time.Since(start).Round(time.Millisecond))
	})
}

func querySuffix(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	return "?" + r.URL.RawQuery
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	var out []entry
	seen := map[string]bool{}
	for _, p := range append(append([]preset.Preset{}, s.presets...), preset.Builtins()...) {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, entry{Name: p.Name, Description: p.Description})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Errorf("encode presets: %v", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	p, svgOpts, _, err := s.paramsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	key := cache.Key("icon", p, len(svgOpts) > 0)
	if data, hit, _ := s.svg.Get(r.Context(), key); hit {
		observability.Cache().OnCacheHit(r.Context(), "svg")
		writeIcon(w, "image/svg+xml", data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "svg")

	start := time.Now()
	observability.Render().OnRenderStart(r.Context(), "svg", p.Marks)
	data := render.RenderSVG(p, svgOpts...)
	observability.Render().OnRenderComplete(r.Context(), "svg", len(data), time.Since(start), nil)

	if err := s.svg.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Debugf("cache set: %v", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "svg", len(data))
	}
	writeIcon(w, "image/svg+xml", data)
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	p, svgOpts, scale, err := s.paramsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	key := cache.Key("icon", p, len(svgOpts) > 0, scale)
	if data, hit, _ := s.png.Get(r.Context(), key); hit {
		observability.Cache().OnCacheHit(r.Context(), "png")
		writeIcon(w, "image/png", data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "png")

	start := time.Now()
	observability.Render().OnRenderStart(r.Context(), "png", p.Marks)
	data, err := render.RenderPNG(p, render.WithScale(scale), render.WithPNGSVGOptions(svgOpts...))
	observability.Render().OnRenderComplete(r.Context(), "png", len(data), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.png.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Debugf("cache set: %v", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "png", len(data))
	}
	writeIcon(w, "image/png", data)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	p, _, _, err := s.paramsFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := render.RenderJSON(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeIcon(w, "application/json", data)
}

func writeIcon(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}
