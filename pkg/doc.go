// Package pkg provides the core libraries for valdigraph, an editor for
// bipolar-valued digraphs.
//
// # Overview
//
// A valued digraph relates every ordered pair of actions (decision
// alternatives) by a credibility value inside a valuation domain [min, max].
// Values above the median affirm the relation, values below it deny it. The
// pkg directory is organized into four main areas:
//
//  1. Model ([valuation], [digraph], [arc]) - domains, relations and the
//     classification of action pairs into drawable arcs
//  2. Interchange ([xmcda], [io]) - the XMCDA-2 document codec and the
//     bundle format that also carries pairwise comparison tables
//  3. Editing ([session], [graph]) - transactional edit operations and the
//     renderer view derived after each edit
//  4. Infrastructure ([cache], [store], [pipeline], [render], [httputil],
//     [observability]) - cached rendering, named snapshots and remote
//     document fetching
//
// # Architecture
//
// The typical data flow through valdigraph:
//
//	XMCDA-2 document / bundle
//	         ↓
//	    [io] package (decode and sniff the format)
//	         ↓
//	    [session] package (edit the digraph)
//	         ↓
//	    [graph] package (nodes and classified links)
//	         ↓
//	    [pipeline] package (cached DOT/SVG/PDF/PNG rendering)
//
// # Quick Start
//
// Load a document, edit one relation and render the result:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/valdigraph/pkg/pipeline"
//	    "github.com/matzehuels/valdigraph/pkg/session"
//	)
//
//	// 1. Open the document
//	sess, _ := session.Open("cars.xmcda2")
//
//	// 2. Set r(a,b) and r(b,a)
//	_ = sess.EditEdge("a", "b", 0.8, 0.3)
//
//	// 3. Render to SVG
//	runner := pipeline.NewRunner(nil, nil)
//	res, _ := runner.Execute(context.Background(), sess.View(), pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	svg := res.Artifacts["svg"]
//
// # Errors
//
// Every package reports failures through [errors], whose codes
// (DUPLICATE_ID, OUT_OF_RANGE, MALFORMED_DOCUMENT, ...) are stable across
// the CLI and the HTTP server.
//
// # Related Commands
//
// The valdigraph CLI (cmd/valdigraph) wraps these libraries:
//
//	valdigraph new cars.xmcda2 --actions a,b,c
//	valdigraph edge edit cars.xmcda2 a b 0.8 0.3
//	valdigraph render cars.xmcda2 --format svg,png
//	valdigraph serve cars.xmcda2
//
// [valuation]: github.com/matzehuels/valdigraph/pkg/valuation
// [digraph]: github.com/matzehuels/valdigraph/pkg/digraph
// [arc]: github.com/matzehuels/valdigraph/pkg/arc
// [xmcda]: github.com/matzehuels/valdigraph/pkg/xmcda
// [io]: github.com/matzehuels/valdigraph/pkg/io
// [session]: github.com/matzehuels/valdigraph/pkg/session
// [graph]: github.com/matzehuels/valdigraph/pkg/graph
// [cache]: github.com/matzehuels/valdigraph/pkg/cache
// [store]: github.com/matzehuels/valdigraph/pkg/store
// [pipeline]: github.com/matzehuels/valdigraph/pkg/pipeline
// [render]: github.com/matzehuels/valdigraph/pkg/render
// [httputil]: github.com/matzehuels/valdigraph/pkg/httputil
// [observability]: github.com/matzehuels/valdigraph/pkg/observability
// [errors]: github.com/matzehuels/valdigraph/pkg/errors
package pkg
