// Package digraph provides the in-memory model of a valued digraph: a finite,
// insertion-ordered set of actions and a valued relation over ordered pairs
// of those actions.
//
// # Overview
//
// Actions are the decision alternatives (nodes). The relation assigns a
// number to an ordered pair (a, b), read as "the credibility that a relates
// to b" on the scale of a [valuation.Domain]. The relation is sparse: a pair
// that was never valued is [Absent], which is a different state from a pair
// whose stored value equals the median.
//
//	g := digraph.New(valuation.Default())
//	_ = g.AddAction(digraph.Action{ID: "a1"})
//	_ = g.AddAction(digraph.Action{ID: "a2", Name: "Site B"})
//	_ = g.SetValue("a1", "a2", 0.8)
//
//	v := g.Value("a2", "a1") // Absent
//
// # Invariants
//
//   - Every action has a self pair valued at the median from creation.
//   - Deleting an action removes its row and column in a single call.
//   - SetValue only accepts values inside [Min, Max]; MarkPending is the only
//     way to store the Max+1 sentinel.
//   - Failed operations leave the model unchanged.
//
// # Concurrency
//
// A Digraph is not safe for concurrent use. Owners that share one across
// goroutines (the HTTP server) serialize access themselves.
package digraph
