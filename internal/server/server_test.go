package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logruler/pkg/preset"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(log.New(io.Discard), opts...).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestIconSVG(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/icon.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}

	svg := string(body)
	if !strings.Contains(svg, `<line x1="5" y1="55" x2="59" y2="55" stroke="#333" stroke-width="3"/>`) {
		t.Error("missing default baseline element")
	}
	if got := strings.Count(svg, "<line "); got != 11 {
		t.Errorf("line element count = %d, want 11", got)
	}
}

func TestIconSVGOverrides(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/icon.svg?marks=4&color=%230066cc&comments=false")
	svg := string(body)

	if got := strings.Count(svg, "<line "); got != 5 {
		t.Errorf("line element count = %d, want 5", got)
	}
	if !strings.Contains(svg, `stroke="#0066cc"`) {
		t.Error("color override not applied")
	}
	if strings.Contains(svg, "<!--") {
		t.Error("comments=false not applied")
	}
}

func TestIconSVGPreset(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/icon.svg?preset=dark")
	if !strings.Contains(string(body), `stroke="#eee"`) {
		t.Error("dark preset not applied")
	}
}

func TestIconSVGErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"bad marks", "?marks=abc", http.StatusBadRequest, "INVALID_PARAMS"},
		{"zero marks", "?marks=0", http.StatusBadRequest, "INVALID_PARAMS"},
		{"bad color", "?color=zz%20top", http.StatusBadRequest, "INVALID_COLOR"},
		{"collapsing margin", "?margin=40", http.StatusBadRequest, "INVALID_PARAMS"},
		{"unknown preset", "?preset=missing", http.StatusNotFound, "PRESET_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+"/icon.svg"+tt.query)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var e struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("unmarshal error body %s: %v", body, err)
			}
			if e.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", e.Code, tt.wantCode)
			}
		})
	}
}

func TestIconPNG(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/icon.png?scale=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}

	img, err := png.Decode(strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestIconJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/icon.json?marks=3")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var doc struct {
		Ticks []struct {
			X float64 `json:"x"`
		} `json:"ticks"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Ticks) != 3 {
		t.Errorf("len(ticks) = %d, want 3", len(doc.Ticks))
	}
}

func TestPresetsEndpoint(t *testing.T) {
	filePresets := []preset.Preset{{Name: "custom", Description: "from file"}}
	srv := newTestServer(t, WithPresets(filePresets))

	_, body := get(t, srv.URL+"/presets")

	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	names := map[string]int{}
	for _, e := range entries {
		names[e.Name]++
	}
	if names["custom"] != 1 {
		t.Errorf("custom preset listed %d times, want 1", names["custom"])
	}
	if names["default"] != 1 {
		t.Errorf("default preset listed %d times, want 1", names["default"])
	}
}

// memCache records cache traffic for assertions.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[string][]byte{}
	}
	c.entries[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error { return nil }
func (c *memCache) Close() error                                 { return nil }

func TestIconSVGCached(t *testing.T) {
	mc := &memCache{}
	srv := newTestServer(t, WithCache(mc))

	_, first := get(t, srv.URL+"/icon.svg?marks=6")
	_, second := get(t, srv.URL+"/icon.svg?marks=6")

	if string(first) != string(second) {
		t.Error("cached response differs from rendered response")
	}
	if mc.sets != 1 {
		t.Errorf("cache sets = %d, want 1 (second request should hit)", mc.sets)
	}

	// Different parameters render and store separately.
	get(t, srv.URL+"/icon.svg?marks=7")
	if mc.sets != 2 {
		t.Errorf("cache sets = %d, want 2", mc.sets)
	}
}
