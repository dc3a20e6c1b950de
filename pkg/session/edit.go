package session

import (
	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
)

// AddNode adds an action. Empty name and comment take the defaults.
//
// Fails with UNSUPPORTED_OPERATION on outranking graphs, DUPLICATE_ID if the
// id is taken and INVALID_INPUT for unusable ids.
func (s *Session) AddNode(id, name, comment string) error {
	if err := s.requireGeneral("adding a node"); err != nil {
		return err
	}
	return s.edit("add-node", func(g *digraph.Digraph) error {
		return g.AddAction(digraph.Action{ID: id, Name: name, Comment: comment})
	})
}

// DeleteNode removes an action with its incident relation entries.
// Unknown ids are a no-op. Fails with UNSUPPORTED_OPERATION on outranking
// graphs.
func (s *Session) DeleteNode(id string) error {
	if err := s.requireGeneral("deleting a node"); err != nil {
		return err
	}
	return s.edit("delete-node", func(g *digraph.Digraph) error {
		g.RemoveAction(id)
		return nil
	})
}

// EditNode changes an action's name and comment; empty arguments keep the
// current value. Allowed on every graph type. Fails with NOT_FOUND for
// unknown ids.
func (s *Session) EditNode(id, name, comment string) error {
	return s.edit("edit-node", func(g *digraph.Digraph) error {
		return g.UpdateAction(id, name, comment)
	})
}

// ConnectEdge marks the pair (a, b) as connected but not yet valued: both
// directions receive the Max+1 sentinel, which classifies as an
// initialization arc until [Session.EditEdge] sets real values.
func (s *Session) ConnectEdge(a, b string) error {
	if err := s.requireGeneral("connecting an edge"); err != nil {
		return err
	}
	if err := requireDistinct(a, b); err != nil {
		return err
	}
	return s.edit("connect-edge", func(g *digraph.Digraph) error {
		return g.MarkPending(a, b)
	})
}

// EditEdge sets r(a, b) = forward and r(b, a) = backward. Both values must
// lie in the valuation domain; if either is rejected with OUT_OF_RANGE
// neither is stored.
func (s *Session) EditEdge(a, b string, forward, backward float64) error {
	if err := s.requireGeneral("editing an edge"); err != nil {
		return err
	}
	if err := requireDistinct(a, b); err != nil {
		return err
	}
	return s.edit("edit-edge", func(g *digraph.Digraph) error {
		if err := g.SetValue(a, b, forward); err != nil {
			return err
		}
		return g.SetValue(b, a, backward)
	})
}

// DeleteEdge clears both directions of (a, b).
func (s *Session) DeleteEdge(a, b string) error {
	if err := s.requireGeneral("deleting an edge"); err != nil {
		return err
	}
	if err := requireDistinct(a, b); err != nil {
		return err
	}
	return s.edit("delete-edge", func(g *digraph.Digraph) error {
		if err := g.Clear(a, b); err != nil {
			return err
		}
		return g.Clear(b, a)
	})
}

// InvertEdge mirrors both directions of (a, b) across the median. Absent
// directions stay absent.
//
// Fails with INVERT_NOT_PERMITTED when the pairwise comparison table has a
// record for the pair in either direction.
func (s *Session) InvertEdge(a, b string) error {
	if err := requireDistinct(a, b); err != nil {
		return err
	}
	if s.pairwise.Covers(a, b) {
		return errors.New(errors.ErrCodeInvertNotPermitted,
			"pair (%s, %s) is backed by a pairwise comparison and cannot be inverted", a, b)
	}
	return s.edit("invert-edge", func(g *digraph.Digraph) error {
		d := g.Domain()
		for _, p := range [2][2]string{{a, b}, {b, a}} {
			v, ok := g.Value(p[0], p[1]).Float()
			if !ok {
				if !g.HasAction(p[0]) || !g.HasAction(p[1]) {
					return errors.New(errors.ErrCodeNotFound, "pair (%s, %s) references an unknown action", p[0], p[1])
				}
				continue
			}
			if err := g.Store(p[0], p[1], d.Invert(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Comparison holds the pairwise comparison records behind a pair.
type Comparison struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Forward  any    `json:"forward,omitempty"`  // record for (Source, Target)
	Backward any    `json:"backward,omitempty"` // record for (Target, Source)
}

// InspectEdge returns the pairwise comparison records for (a, b).
//
// Only outranking graphs carry comparisons; general graphs fail with
// UNSUPPORTED_OPERATION. Unknown actions fail with NOT_FOUND.
func (s *Session) InspectEdge(a, b string) (Comparison, error) {
	if s.typ == digraph.General {
		return Comparison{}, errors.New(errors.ErrCodeUnsupported, "pairwise comparison is not possible on general graphs")
	}
	for _, id := range []string{a, b} {
		if !s.graph.HasAction(id) {
			return Comparison{}, errors.New(errors.ErrCodeNotFound, "action %q not found", id)
		}
	}
	c := Comparison{Source: a, Target: b}
	c.Forward, _ = s.pairwise.Entry(a, b)
	c.Backward, _ = s.pairwise.Entry(b, a)
	return c, nil
}
