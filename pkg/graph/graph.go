package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/digraph"
)

// NodeGroup is the group every node belongs to.
const NodeGroup = 1

// Graph is a renderable snapshot of a digraph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Mode  string `json:"mode"`
	Hide  bool   `json:"hide"`
}

// Node is a drawable action.
type Node struct {
	ID       string `json:"id"`
	Group    int    `json:"group"`
	Comment  string `json:"comment"`
	FullName string `json:"fullName"`
}

// Link is a drawable arc.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   int    `json:"type"`
	Value  string `json:"value"`  // r(source, target), drawn at the target end
	Value2 string `json:"value2"` // r(target, source), drawn at the source end
}

// ArcType returns the arc classification of the link.
func (l Link) ArcType() arc.Type { return arc.Type(l.Type) }

// Build derives the renderer view of g. Arcs are classified in a full pass;
// with hide set, suppressible arcs are left out.
func Build(g *digraph.Digraph, mode digraph.GraphType, hide bool) Graph {
	actions := g.Actions()
	out := Graph{
		Nodes: make([]Node, len(actions)),
		Links: []Link{},
		Mode:  string(mode),
		Hide:  hide,
	}
	for i, a := range actions {
		out.Nodes[i] = Node{ID: a.ID, Group: NodeGroup, Comment: a.Comment, FullName: a.Name}
	}
	for _, a := range arc.Compute(g, hide) {
		out.Links = append(out.Links, FromArc(a))
	}
	return out
}

// FromArc converts a classified arc.
func FromArc(a arc.Arc) Link {
	return Link{
		Source: a.Source,
		Target: a.Target,
		Type:   int(a.Type),
		Value:  a.ForwardText(),
		Value2: a.BackwardText(),
	}
}

// Marshal encodes g as indented JSON.
func Marshal(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes g as indented JSON to w.
func Write(w io.Writer, g Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}
