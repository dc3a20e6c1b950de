package graph

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/digraph"
)

func buildDigraph(t *testing.T) *digraph.Digraph {
	t.Helper()
	g, err := digraph.NewWithBounds(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []digraph.Action{
		{ID: "a", Name: "Alpha", Comment: "first"},
		{ID: "b"},
		{ID: "c"},
	} {
		if err := g.AddAction(a); err != nil {
			t.Fatal(err)
		}
	}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(g.SetValue("a", "b", 0.9))
	must(g.SetValue("b", "a", 0.1))
	must(g.SetValue("b", "c", 0.5))
	must(g.SetValue("c", "b", 0.5))
	must(g.MarkPending("a", "c"))
	return g
}

func TestBuild(t *testing.T) {
	g := buildDigraph(t)

	tests := []struct {
		name      string
		hide      bool
		wantLinks []Link
	}{
		{
			name: "All",
			wantLinks: []Link{
				{Source: "a", Target: "b", Type: int(arc.ForwardStrong), Value: "0.90", Value2: "0.10"},
				{Source: "a", Target: "c", Type: int(arc.Init)},
				{Source: "b", Target: "c", Type: int(arc.SymmetricNeutral), Value: "0.50", Value2: "0.50"},
			},
		},
		{
			name: "Hide",
			hide: true,
			wantLinks: []Link{
				{Source: "a", Target: "b", Type: int(arc.ForwardStrong), Value: "0.90", Value2: "0.10"},
				{Source: "a", Target: "c", Type: int(arc.Init)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Build(g, digraph.General, tt.hide)
			if v.Mode != "general" || v.Hide != tt.hide {
				t.Errorf("Mode, Hide = %q, %v", v.Mode, v.Hide)
			}
			if len(v.Links) != len(tt.wantLinks) {
				t.Fatalf("got %d links, want %d: %+v", len(v.Links), len(tt.wantLinks), v.Links)
			}
			for i, l := range v.Links {
				if l != tt.wantLinks[i] {
					t.Errorf("link %d = %+v, want %+v", i, l, tt.wantLinks[i])
				}
			}
		})
	}
}

func TestBuildNodes(t *testing.T) {
	v := Build(buildDigraph(t), digraph.Outranking, false)
	want := []Node{
		{ID: "a", Group: 1, Comment: "first", FullName: "Alpha"},
		{ID: "b", Group: 1, Comment: "none", FullName: "nameless"},
		{ID: "c", Group: 1, Comment: "none", FullName: "nameless"},
	}
	if len(v.Nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(v.Nodes), len(want))
	}
	for i, n := range v.Nodes {
		if n != want[i] {
			t.Errorf("node %d = %+v, want %+v", i, n, want[i])
		}
	}
	if v.Mode != "outranking" {
		t.Errorf("Mode = %q, want outranking", v.Mode)
	}
}

func TestBuildEmpty(t *testing.T) {
	g, _ := digraph.NewWithBounds(0, 1)
	data, err := Marshal(Build(g, digraph.General, false))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["links"]) != "[]" || string(raw["nodes"]) != "[]" {
		t.Errorf("empty graph should encode empty arrays, got %s", data)
	}
}

func TestMarshalFieldNames(t *testing.T) {
	data, err := Marshal(Build(buildDigraph(t), digraph.General, false))
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "group", "comment", "fullName"} {
		if _, ok := decoded.Nodes[0][key]; !ok {
			t.Errorf("node missing %q", key)
		}
	}
	for _, key := range []string{"source", "target", "type", "value", "value2"} {
		if _, ok := decoded.Links[0][key]; !ok {
			t.Errorf("link missing %q", key)
		}
	}
}

func TestLinkArcType(t *testing.T) {
	l := FromArc(arc.Arc{Source: "x", Target: "y", Type: arc.BackwardSoft,
		Forward: digraph.Valued(0.5), Backward: digraph.Valued(0.7)})
	if l.ArcType() != arc.BackwardSoft || l.Value != "0.50" || l.Value2 != "0.70" {
		t.Errorf("FromArc = %+v", l)
	}
}
