package digraph

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

// Defaults applied to actions created without a name or comment.
const (
	DefaultName    = "nameless"
	DefaultComment = "none"
)

// GraphType selects which structural edits a graph accepts.
type GraphType string

const (
	// General graphs are fully editable.
	General GraphType = "general"
	// Outranking graphs are computed by an outranking method; their
	// structure is read-only.
	Outranking GraphType = "outranking"
)

// TypeFromProjectID derives the graph type from a document's project
// identifier: any id containing "outranking" is an outranking graph.
func TypeFromProjectID(id string) GraphType {
	if strings.Contains(id, "outranking") {
		return Outranking
	}
	return General
}

// Action is a node of the digraph.
type Action struct {
	ID      string // Unique identifier
	Name    string // Display name, "nameless" when empty
	Comment string // Free text, "none" when empty
}

// withDefaults fills empty fields. Comments are stored trimmed, as documents
// read them back, so whitespace-only comments count as empty.
func (a Action) withDefaults() Action {
	if a.Name == "" {
		a.Name = DefaultName
	}
	a.Comment = strings.TrimSpace(a.Comment)
	if a.Comment == "" {
		a.Comment = DefaultComment
	}
	return a
}

// Pair is an ordered pair of action ids.
type Pair struct {
	From string
	To   string
}

// Value is a relation entry. The zero Value is [Absent].
type Value struct {
	x     float64
	valid bool
}

// Absent marks a pair for which no relation was recorded.
var Absent = Value{}

// Valued wraps a stored relation value.
func Valued(x float64) Value { return Value{x: x, valid: true} }

// Float returns the stored number and whether one was stored.
func (v Value) Float() (float64, bool) { return v.x, v.valid }

// IsAbsent reports whether no value is stored.
func (v Value) IsAbsent() bool { return !v.valid }

// String renders the value with two decimals, or "" when absent.
func (v Value) String() string {
	if !v.valid {
		return ""
	}
	return valuation.Format(v.x)
}

// Digraph is a valued digraph over an insertion-ordered action set.
//
// The zero value is not usable - use [New] or [NewWithBounds].
type Digraph struct {
	domain   valuation.Domain
	order    []string
	actions  map[string]*Action
	relation map[Pair]float64
}

// New creates an empty digraph on the given valuation domain.
func New(domain valuation.Domain) *Digraph {
	return &Digraph{
		domain:   domain,
		actions:  make(map[string]*Action),
		relation: make(map[Pair]float64),
	}
}

// NewWithBounds creates an empty digraph on the domain [min, max].
// It fails with INVALID_INPUT unless min < max.
func NewWithBounds(min, max float64) (*Digraph, error) {
	d, err := valuation.New(min, max)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Domain returns the valuation domain.
func (g *Digraph) Domain() valuation.Domain { return g.domain }

// Len returns the number of actions.
func (g *Digraph) Len() int { return len(g.order) }

// AddAction inserts an action and seeds its self pair with the median.
// Empty Name and Comment fields receive the package defaults.
//
// Returns INVALID_INPUT for an unusable id and DUPLICATE_ID if an action with
// the same id exists.
func (g *Digraph) AddAction(a Action) error {
	if err := errors.ValidateActionID(a.ID); err != nil {
		return err
	}
	if _, exists := g.actions[a.ID]; exists {
		return errors.New(errors.ErrCodeDuplicateID, "action %q already exists", a.ID)
	}
	a = a.withDefaults()
	g.actions[a.ID] = &a
	g.order = append(g.order, a.ID)
	g.relation[Pair{a.ID, a.ID}] = g.domain.Med
	return nil
}

// RemoveAction deletes the action and every relation entry that references it
// as source or target. It is a no-op for unknown ids.
func (g *Digraph) RemoveAction(id string) {
	if _, ok := g.actions[id]; !ok {
		return
	}
	delete(g.actions, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
	maps.DeleteFunc(g.relation, func(p Pair, _ float64) bool { return p.From == id || p.To == id })
}

// UpdateAction replaces an action's name and comment. Empty arguments, and
// whitespace-only comments, keep the current value. Comments are trimmed.
// The id and the relation are unaffected.
//
// Returns NOT_FOUND for unknown ids.
func (g *Digraph) UpdateAction(id, name, comment string) error {
	a, ok := g.actions[id]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "action %q not found", id)
	}
	if name != "" {
		a.Name = name
	}
	if comment = strings.TrimSpace(comment); comment != "" {
		a.Comment = comment
	}
	return nil
}

// Action returns a copy of the action with the given id.
func (g *Digraph) Action(id string) (Action, bool) {
	a, ok := g.actions[id]
	if !ok {
		return Action{}, false
	}
	return *a, true
}

// HasAction reports whether an action with the given id exists.
func (g *Digraph) HasAction(id string) bool {
	_, ok := g.actions[id]
	return ok
}

// Actions returns copies of all actions in insertion order.
func (g *Digraph) Actions() []Action {
	out := make([]Action, len(g.order))
	for i, id := range g.order {
		out[i] = *g.actions[id]
	}
	return out
}

// IDs returns the action ids in insertion order.
func (g *Digraph) IDs() []string { return slices.Clone(g.order) }

// SetValue stores Trunc2(v) at the ordered pair (a, b).
//
// Returns NOT_FOUND if either endpoint is unknown and OUT_OF_RANGE if v is
// outside the valuation domain. The model is unchanged on failure.
func (g *Digraph) SetValue(a, b string, v float64) error {
	if err := g.checkPair(a, b); err != nil {
		return err
	}
	if !g.domain.Contains(v) {
		return errors.New(errors.ErrCodeOutOfRange, "value %v for (%s, %s) must be between %s and %s",
			v, a, b, valuation.Format(g.domain.Min), valuation.Format(g.domain.Max))
	}
	g.relation[Pair{a, b}] = valuation.Trunc2(v)
	return nil
}

// Store stores Trunc2(v) at (a, b) without checking the valuation domain.
// Decoders use it to restore documents that carry out-of-range sentinels.
//
// Returns NOT_FOUND if either endpoint is unknown.
func (g *Digraph) Store(a, b string, v float64) error {
	if err := g.checkPair(a, b); err != nil {
		return err
	}
	g.relation[Pair{a, b}] = valuation.Trunc2(v)
	return nil
}

// MarkPending stores the Max+1 sentinel in both directions of (a, b), the
// state of a pair that was connected but not yet valued.
//
// Returns NOT_FOUND if either endpoint is unknown.
func (g *Digraph) MarkPending(a, b string) error {
	if err := g.checkPair(a, b); err != nil {
		return err
	}
	p := g.domain.Pending()
	g.relation[Pair{a, b}] = p
	g.relation[Pair{b, a}] = p
	return nil
}

// Clear removes the entry at (a, b); the pair becomes Absent.
// Returns NOT_FOUND if either endpoint is unknown.
func (g *Digraph) Clear(a, b string) error {
	if err := g.checkPair(a, b); err != nil {
		return err
	}
	delete(g.relation, Pair{a, b})
	return nil
}

// Value returns the entry stored at (a, b), or [Absent].
func (g *Digraph) Value(a, b string) Value {
	x, ok := g.relation[Pair{a, b}]
	if !ok {
		return Absent
	}
	return Valued(x)
}

// ValueOrMed returns the stored value at (a, b), falling back to the median
// for absent pairs. This is the value written by dense serializers.
func (g *Digraph) ValueOrMed(a, b string) float64 {
	if x, ok := g.relation[Pair{a, b}]; ok {
		return x
	}
	return g.domain.Med
}

// PairCount returns the number of stored relation entries, self pairs included.
func (g *Digraph) PairCount() int { return len(g.relation) }

// Clone returns a deep copy. Edits that touch several entries apply to a
// clone first and swap it in only when every step succeeded.
func (g *Digraph) Clone() *Digraph {
	c := &Digraph{
		domain:   g.domain,
		order:    slices.Clone(g.order),
		actions:  make(map[string]*Action, len(g.actions)),
		relation: maps.Clone(g.relation),
	}
	for id, a := range g.actions {
		cp := *a
		c.actions[id] = &cp
	}
	return c
}

func (g *Digraph) checkPair(a, b string) error {
	if _, ok := g.actions[a]; !ok {
		return errors.New(errors.ErrCodeNotFound, "action %q not found", a)
	}
	if _, ok := g.actions[b]; !ok {
		return errors.New(errors.ErrCodeNotFound, "action %q not found", b)
	}
	return nil
}
