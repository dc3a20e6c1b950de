package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/valdigraph/pkg/cache"
	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/graph"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != DefaultFormat || o.Scale != DefaultScale {
		t.Errorf("defaults = %+v", o)
	}

	bad := Options{Scale: -1}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("negative scale should fail")
	}
}

func TestArtifactKey(t *testing.T) {
	o := Options{Labels: true, Scale: 2}
	if o.ArtifactKey("h", "svg", false) == o.ArtifactKey("h", "svg", true) {
		t.Error("hide flag should change the key")
	}
	if o.ArtifactKey("h", "svg", false) == o.ArtifactKey("h", "dot", false) {
		t.Error("format should change the key")
	}
	if o.ArtifactKey("h", "svg", false) != (&Options{Labels: true, Scale: 3}).ArtifactKey("h", "svg", false) {
		t.Error("scale should only matter for png")
	}
	if !strings.HasPrefix(o.ArtifactKey("h", "svg", false), cache.PrefixRender+":") {
		t.Error("key should carry the render prefix")
	}
}

func testView(t *testing.T) graph.Graph {
	t.Helper()
	g := digraph.New(valuation.Default())
	for _, id := range []string{"a", "b"} {
		if err := g.AddAction(digraph.Action{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	_ = g.SetValue("a", "b", 1)
	_ = g.SetValue("b", "a", 0)
	return graph.Build(g, digraph.General, false)
}

// TestExecuteCaches uses the DOT format, which needs no Graphviz run.
func TestExecuteCaches(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, log.New(io.Discard))
	defer r.Close()

	v := testView(t)
	opts := Options{Formats: []string{"dot"}}

	first, err := r.Execute(ctx, v, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}
	if !strings.Contains(string(first.Artifacts["dot"]), `"a" -> "b"`) {
		t.Errorf("dot artifact = %s", first.Artifacts["dot"])
	}
	if first.Stats.Actions != 2 || first.Stats.Arcs != 1 {
		t.Errorf("stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, v, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit || second.ViewHash != first.ViewHash {
		t.Errorf("second run hit=%v hash=%s, want cached %s", second.CacheHit, second.ViewHash, first.ViewHash)
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, v, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteRejectsFormat(t *testing.T) {
	r := NewRunner(nil, log.New(io.Discard))
	_, err := r.Execute(context.Background(), testView(t), Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute = %v, want INVALID_INPUT", err)
	}
}
