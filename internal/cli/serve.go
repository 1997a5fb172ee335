package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logruler/internal/server"
	"github.com/matzehuels/logruler/pkg/cache"
	"github.com/matzehuels/logruler/pkg/observability"
	"github.com/matzehuels/logruler/pkg/preset"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string        // listen address
	presetsFile string        // TOML preset file
	cacheDir    string        // file cache directory (default: XDG cache dir)
	redisAddr   string        // redis address, overrides the file cache
	noCache     bool          // disable artifact caching
	cacheTTL    time.Duration // cache entry lifetime
}

// newServeCmd creates the serve command for the HTTP preview server.
// Icons are rendered on demand from query parameters and cached by
// parameter hash (file cache by default, Redis with --redis).
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:     "localhost:8080",
		cacheTTL: time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ruler icons over HTTP for preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.presetsFile, "presets-file", "", "TOML file with additional presets")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "render cache directory (default: XDG cache dir)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared render cache (host:port)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "render cache entry lifetime")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	var filePresets []preset.Preset
	if opts.presetsFile != "" {
		var err error
		filePresets, err = preset.Load(opts.presetsFile)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded %d presets from %s", len(filePresets), opts.presetsFile)
	}

	c, err := newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	hooks := &logHooks{logger: logger}
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)

	srv := server.New(logger,
		server.WithCache(c),
		server.WithPresets(filePresets),
		server.WithTTL(opts.cacheTTL),
	)

	if err := srv.ListenAndServe(ctx, opts.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// newServeCache selects the cache backend from the flags.
func newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case opts.cacheDir != "":
		return cache.NewFileCache(opts.cacheDir)
	}

	dir, err := cacheDir()
	if err != nil {
		// No usable cache directory; serve without caching.
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// logHooks reports render and cache events on the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, marks int) {
	h.logger.Debugf("render %s: %d marks", format, marks)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("render %s failed: %v", format, err)
		return
	}
	h.logger.Debugf("render %s: %d bytes (%s)", format, size, d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, scope string) {
	h.logger.Debugf("cache hit (%s)", scope)
}

func (h *logHooks) OnCacheMiss(_ context.Context, scope string) {
	h.logger.Debugf("cache miss (%s)", scope)
}

func (h *logHooks) OnCacheSet(_ context.Context, scope string, size int) {
	h.logger.Debugf("cache set (%s): %d bytes", scope, size)
}
