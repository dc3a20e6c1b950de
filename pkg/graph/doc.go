// Package graph defines the renderer contract: the node list and arc list a
// renderer draws after every load or edit.
//
// The wire format is the one consumed by browser renderers of the original
// editor:
//
//	{
//	  "nodes": [{"id": "a1", "group": 1, "comment": "north", "fullName": "Site A"}],
//	  "links": [{"source": "a1", "target": "a2", "type": 0, "value": "0.87", "value2": "0.20"}],
//	  "mode": "general",
//	  "hide": false
//	}
//
// Link types are the integer arc codes of package arc. The value labels are
// the two-decimal forward and backward relation values, empty for
// initialization arcs whose values are not yet set.
//
// Use [Build] to derive a [Graph] from a digraph. A Graph is a snapshot;
// it does not observe later edits.
package graph
