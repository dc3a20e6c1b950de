// Package io reads and writes valued digraph documents.
//
// # Formats
//
// Two on-disk formats are supported:
//
//   - xml: a bare XMCDA-2 document (see package xmcda)
//   - bundle: a JSON envelope carrying an XMCDA-2 document plus the pairwise
//     comparison table of an outranking computation
//
// The bundle envelope looks like this:
//
//	{
//	  "xmcda2": "<?xml version=\"1.0\" ...",
//	  "pairwiseComparisions": "{\"a1\": {\"a2\": {...}}}"
//	}
//
// The pairwise field is itself a JSON-encoded string. Its key keeps the
// spelling used by existing exporters so bundles stay interchangeable.
//
// # Reading
//
// [Read] sniffs the input: a leading '{' selects the bundle format, anything
// else is decoded as XMCDA-2. [Import] does the same for a file path.
//
// # Writing
//
// [Write] takes an explicit [Format]; [Export] infers it from the file
// extension (.json writes a bundle, anything else XML).
package io
