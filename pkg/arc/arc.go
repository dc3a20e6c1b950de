// Package arc classifies pairs of relation values into renderable arc types.
//
// For every unordered pair {a, b} of distinct actions the classifier looks at
// the forward value r(a,b) and the backward value r(b,a) and compares both to
// the median and maximum of the valuation domain:
//
//	r(a,b) > Max & r(b,a) > Max   a -- b    Init
//	r(a,b) > Med & r(b,a) > Med   a <--> b  SymmetricStrong
//	r(a,b) > Med & r(b,a) = Med   a o--> b  ForwardSoft
//	r(a,b) = Med & r(b,a) > Med   a <--o b  BackwardSoft
//	r(a,b) = Med = r(b,a)         a o..o b  SymmetricNeutral
//	r(a,b) > Med & r(b,a) < Med   a --> b   ForwardStrong
//	r(a,b) = Med & r(b,a) < Med   a ..o b   BackwardDottedSoft
//	r(a,b) < Med & r(b,a) > Med   a <-- b   BackwardStrong
//	r(a,b) < Med & r(b,a) = Med   a o.. b   ForwardDottedSoft
//	r(a,b) < Med & r(b,a) < Med   a    b    None
//
// Rows are tested top to bottom and the first match wins. Pairs where either
// direction was never valued classify as [NoRelation], which is kept apart
// from a computed [None]. Neither produces an arc.
package arc

import (
	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

// Type is the arc type of a pair. The numeric values are the codes consumed
// by renderers and must not change.
type Type int

const (
	Init               Type = -1
	ForwardStrong      Type = 0
	BackwardStrong     Type = 1
	SymmetricStrong    Type = 2
	ForwardSoft        Type = 3
	BackwardSoft       Type = 4
	ForwardDottedSoft  Type = 5
	BackwardDottedSoft Type = 6
	SymmetricNeutral   Type = 7

	// None is a computed pair with both values below the median.
	None Type = 8
	// NoRelation is a pair with at least one direction absent.
	NoRelation Type = 9
)

var typeNames = map[Type]string{
	Init:               "init",
	ForwardStrong:      "forward-strong",
	BackwardStrong:     "backward-strong",
	SymmetricStrong:    "symmetric-strong",
	ForwardSoft:        "forward-soft",
	BackwardSoft:       "backward-soft",
	ForwardDottedSoft:  "forward-dotted-soft",
	BackwardDottedSoft: "backward-dotted-soft",
	SymmetricNeutral:   "symmetric-neutral",
	None:               "none",
	NoRelation:         "no-relation",
}

// String returns the kebab-case name of the type.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Suppressible reports whether arcs of this type are dropped when the hide
// flag is set. These are the arcs with a median endpoint.
func (t Type) Suppressible() bool {
	switch t {
	case ForwardSoft, BackwardSoft, SymmetricNeutral, BackwardDottedSoft, ForwardDottedSoft:
		return true
	}
	return false
}

// Drawn reports whether the type produces an arc at all.
func (t Type) Drawn() bool { return t != None && t != NoRelation }

// Classify maps the forward value r(a,b) and the backward value r(b,a) to an
// arc type. It is total: NaN inputs and every other unmatched combination
// classify as None.
func Classify(forward, backward float64, d valuation.Domain) Type {
	med, max := d.Med, d.Max
	switch {
	case forward > max && backward > max:
		return Init
	case forward > med && backward > med:
		return SymmetricStrong
	case forward > med && backward == med:
		return ForwardSoft
	case forward == med && backward > med:
		return BackwardSoft
	case forward == med && backward == med:
		return SymmetricNeutral
	case forward > med && backward < med:
		return ForwardStrong
	case forward == med && backward < med:
		return BackwardDottedSoft
	case forward < med && backward > med:
		return BackwardStrong
	case forward < med && backward == med:
		return ForwardDottedSoft
	default:
		return None
	}
}

// ClassifyValues is [Classify] over relation entries. It returns NoRelation
// when either direction is absent.
func ClassifyValues(forward, backward digraph.Value, d valuation.Domain) Type {
	f, okF := forward.Float()
	b, okB := backward.Float()
	if !okF || !okB {
		return NoRelation
	}
	return Classify(f, b, d)
}

// Arc is a classified pair of distinct actions. Source precedes Target in
// the digraph's insertion order.
type Arc struct {
	Source   string
	Target   string
	Type     Type
	Forward  digraph.Value // r(Source, Target)
	Backward digraph.Value // r(Target, Source)
}

// ForwardText is r(Source, Target) as text, drawn at the target end. It is
// empty for Init arcs.
func (a Arc) ForwardText() string {
	if a.Type == Init {
		return ""
	}
	return a.Forward.String()
}

// BackwardText is r(Target, Source) as text, drawn at the source end. It is
// empty for Init arcs.
func (a Arc) BackwardText() string {
	if a.Type == Init {
		return ""
	}
	return a.Backward.String()
}

// Compute classifies every unordered pair of g exactly once, sweeping pairs
// (i, j) with i < j in insertion order, and returns the drawable arcs. When
// hide is true, suppressible arcs are dropped.
//
// Compute is a full pass; there is no incremental update.
func Compute(g *digraph.Digraph, hide bool) []Arc {
	ids := g.IDs()
	d := g.Domain()

	var arcs []Arc
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			fwd, bwd := g.Value(a, b), g.Value(b, a)
			t := ClassifyValues(fwd, bwd, d)
			if !t.Drawn() || (hide && t.Suppressible()) {
				continue
			}
			arcs = append(arcs, Arc{Source: a, Target: b, Type: t, Forward: fwd, Backward: bwd})
		}
	}
	return arcs
}

// Counts tallies the classification of every unordered pair, including the
// None and NoRelation states that Compute omits.
func Counts(g *digraph.Digraph) map[Type]int {
	ids := g.IDs()
	d := g.Domain()
	out := make(map[Type]int)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			out[ClassifyValues(g.Value(ids[i], ids[j]), g.Value(ids[j], ids[i]), d)]++
		}
	}
	return out
}
