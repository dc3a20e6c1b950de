// Package pipeline renders session views into diagram artifacts with
// caching, shared by the render command and the HTTP server.
//
// A run takes the renderer view of a session (package graph), renders it in
// every requested format through package nodelink, and stores each artifact
// in a [cache.Cache] keyed by the view's content hash and the options that
// change the output. Rendering the same view twice hits the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, sess.View(), pipeline.Options{
//	    Formats: []string{"svg"},
//	    Labels:  true,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/valdigraph/pkg/cache"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/render/nodelink"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultFormat is rendered when no format is requested.
	DefaultFormat = nodelink.FormatSVG

	// DefaultScale is the PNG resolution factor.
	DefaultScale = 2.0

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// ValidFormats lists the accepted output formats.
var ValidFormats = map[string]bool{
	nodelink.FormatDOT: true,
	nodelink.FormatSVG: true,
	nodelink.FormatPDF: true,
	nodelink.FormatPNG: true,
}

// =============================================================================
// Options and Result
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Formats are the artifacts to produce. Empty means DefaultFormat.
	Formats []string

	// Detailed adds action names and comments to node labels.
	Detailed bool

	// Labels draws relation values at the arc ends.
	Labels bool

	// Scale is the PNG resolution factor. Zero means DefaultScale.
	Scale float64

	// Refresh bypasses cached artifacts and overwrites them.
	Refresh bool
}

// Result holds the output of a pipeline run.
type Result struct {
	// ViewHash is the content hash of the rendered view.
	ViewHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Actions    int
	Arcs       int
	RenderTime time.Duration
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg, pdf, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults fills in defaults and validates the options.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return nil
}

// NodelinkOptions returns the renderer options.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{Detailed: o.Detailed, Labels: o.Labels, Scale: o.Scale}
}

// ArtifactKey returns the cache key of one artifact of the view with the
// given hash. The hide flag is part of the view, hence of its hash.
func (o *Options) ArtifactKey(viewHash, format string, hide bool) string {
	keyOpts := cache.RenderKeyOpts{
		Format:   format,
		Hide:     hide,
		Detailed: o.Detailed,
		Labels:   o.Labels,
	}
	if format == nodelink.FormatPNG {
		keyOpts.Scale = o.Scale
	}
	return cache.RenderKey(viewHash, keyOpts)
}
