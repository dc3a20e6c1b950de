// Package session implements the edit operations of the valued digraph
// editor.
//
// A [Session] owns one digraph together with its graph type, the optional
// pairwise comparison table and the hide flag. Every operation either
// succeeds and ends with a full reclassification of the arcs, or fails and
// leaves the session exactly as it was:
//
//	s, _ := session.New(0, 1)
//	_ = s.AddNode("a1", "Site A", "")
//	_ = s.AddNode("a2", "Site B", "")
//	_ = s.ConnectEdge("a1", "a2")            // initialization arc
//	_ = s.EditEdge("a1", "a2", 0.8, 0.3)     // forward strong arc
//	view := s.View()                         // renderer contract
//
// # Graph Types
//
// General graphs accept every edit. Outranking graphs are the output of an
// outranking computation: their actions and arcs are fixed, so structural
// edits fail with UNSUPPORTED_OPERATION. Their pairs can be inspected
// against the pairwise comparison table and inverted where the table has no
// record.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Callers that share one, such as
// the HTTP server, serialize access themselves.
package session
