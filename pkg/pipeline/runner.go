package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/valdigraph/pkg/cache"
	"github.com/matzehuels/valdigraph/pkg/graph"
	"github.com/matzehuels/valdigraph/pkg/render/nodelink"
)

// Runner renders views with caching.
// Both the CLI and the server use it so caching behaves the same.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute renders v in every requested format.
func (r *Runner) Execute(ctx context.Context, v graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	data, err := graph.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize view for cache key: %w", err)
	}
	result := &Result{
		ViewHash:  cache.Hash(data),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats:     Stats{Actions: len(v.Nodes), Arcs: len(v.Links)},
		CacheHit:  true,
	}

	start := time.Now()
	for _, format := range opts.Formats {
		out, hit, err := r.renderFormat(ctx, v, result.ViewHash, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = out
		result.CacheHit = result.CacheHit && hit
	}
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Debug("rendered diagram",
		"formats", opts.Formats,
		"arcs", result.Stats.Arcs,
		"cached", result.CacheHit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) renderFormat(ctx context.Context, v graph.Graph, hash, format string, opts Options) ([]byte, bool, error) {
	key := opts.ArtifactKey(hash, format, v.Hide)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
	}

	out, err := nodelink.Render(ctx, v, format, opts.NodelinkOptions())
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, out, TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	}
	return out, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
