package xmcda

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"

	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
)

// Marshal encodes g as an XMCDA-2 document.
func Marshal(g *digraph.Digraph, meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes g as an XMCDA-2 document with the header described by meta.
//
// The pairs block is dense: every ordered pair of actions, self pairs
// included, with the median written for absent pairs.
//
// An integer valuation floors both bounds; when they collapse to the same
// integer Encode fails with INVALID_INPUT and writes nothing.
func Encode(w io.Writer, g *digraph.Digraph, meta Metadata) error {
	meta = meta.WithDefaults()
	if err := meta.Validate(); err != nil {
		return err
	}
	if d := g.Domain(); meta.ValuationType == ValuationInteger && math.Floor(d.Min) >= math.Floor(d.Max) {
		return errors.New(errors.ErrCodeInvalidInput,
			"integer valuation of [%g, %g] has equal bounds; use the standard valuation", d.Min, d.Max)
	}
	doc := buildDocument(g, meta)

	if _, err := io.WriteString(w, xml.Header+stylesheetPI+"\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}
	return nil
}

func buildDocument(g *digraph.Digraph, meta Metadata) outDocument {
	d := g.Domain()
	actions := g.Actions()

	alts := make([]outAlternative, len(actions))
	for i, a := range actions {
		alts[i] = outAlternative{
			ID:      a.ID,
			Name:    a.Name,
			Comment: a.Comment,
			Type:    "real",
			Active:  true,
		}
	}

	pairs := make([]outPair, 0, len(actions)*len(actions))
	for _, a := range actions {
		for _, b := range actions {
			pairs = append(pairs, outPair{
				Initial:  a.ID,
				Terminal: b.ID,
				Value:    fixedNumber(g.ValueOrMed(a.ID, b.ID)),
			})
		}
	}

	min, max := RealNumber(d.Min), RealNumber(d.Max)
	if meta.ValuationType == ValuationInteger {
		min, max = IntegerNumber(d.Min), IntegerNumber(d.Max)
	}

	return outDocument{
		XSI:            namespaceXSI,
		SchemaLocation: schemaLocation,
		XMCDA:          namespaceXMCDA,
		Project: outProject{
			ID:      meta.FileName,
			Name:    meta.Name,
			Title:   "Stored Digraph in XMCDA-2.0 format",
			PID:     meta.FileName,
			PName:   meta.Name,
			Type:    "root",
			User:    meta.Author,
			Version: meta.Reference,
		},
		Alternatives: outAlternatives{
			Concept: "Digraph nodes",
			Description: outListDescription{
				Title:   "Nodes of the digraph",
				Type:    "alternatives",
				Comment: "Set of nodes of the digraph.",
			},
			Alternatives: alts,
		},
		Comparisons: outComparisons{
			ID:   "1",
			Name: meta.RelationName,
			Description: outListDescription{
				Title:   "Randomly Valued Relation",
				Type:    meta.RelationType,
				Comment: meta.Category + " " + meta.Subcategory + " Digraph",
			},
			Valuation: outValuation{
				Name:     "valuationDomain",
				SubTitle: "Valuation Domain",
				Minimum:  min,
				Maximum:  max,
			},
			ComparisonType: meta.RelationName,
			Pairs: outPairs{
				SubTitle: "Valued Adjacency Table",
				Comment:  meta.Category + " " + meta.Subcategory + " Digraph",
				Pairs:    pairs,
			},
		},
	}
}
