package io

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// PairwiseTable holds the pairwise comparison records behind an outranking
// relation, keyed by source and target action id. Records are opaque and
// passed through unchanged.
type PairwiseTable map[string]map[string]any

// Entry returns the record stored for (a, b).
func (t PairwiseTable) Entry(a, b string) (any, bool) {
	row, ok := t[a]
	if !ok {
		return nil, false
	}
	v, ok := row[b]
	return v, ok
}

// Covers reports whether a record exists for (a, b) or (b, a).
func (t PairwiseTable) Covers(a, b string) bool {
	if _, ok := t.Entry(a, b); ok {
		return true
	}
	_, ok := t.Entry(b, a)
	return ok
}

// Clone returns a copy of the table with independent rows.
// Records themselves are shared.
func (t PairwiseTable) Clone() PairwiseTable {
	if t == nil {
		return nil
	}
	out := make(PairwiseTable, len(t))
	for k, row := range t {
		r := make(map[string]any, len(row))
		for kk, v := range row {
			r[kk] = v
		}
		out[k] = r
	}
	return out
}

// parsePairwise decodes the JSON string carried by a bundle. An empty string
// or "{}" yields a nil table.
func parsePairwise(s string) (PairwiseTable, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil, nil
	}
	var t PairwiseTable
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "decode pairwise comparisons")
	}
	if len(t) == 0 {
		return nil, nil
	}
	return t, nil
}

func formatPairwise(t PairwiseTable) (string, error) {
	if len(t) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode pairwise comparisons")
	}
	return string(data), nil
}
