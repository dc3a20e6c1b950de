package xmcda

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

// Project is the parsed projectReference header of a document.
type Project struct {
	ID           string // projectReference id attribute
	Name         string // projectReference name attribute
	Title        string
	Author       string // <user>, or <author> in Digraph3 exports
	Version      string
	RelationName string // alternativesComparisons name attribute
}

// Document is a decoded XMCDA-2 valued digraph.
type Document struct {
	Graph   *digraph.Digraph
	Type    digraph.GraphType
	Project Project
}

// Unmarshal decodes an XMCDA-2 document from data.
func Unmarshal(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads an XMCDA-2 document and builds a fresh digraph from it.
//
// Every failure is a MALFORMED_DOCUMENT error and no Document is returned.
// Elements outside the valued digraph subset are ignored.
func Decode(r io.Reader) (*Document, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "parse XMCDA document")
	}

	domain, err := decodeDomain(doc.Comparisons)
	if err != nil {
		return nil, err
	}
	g := digraph.New(domain)

	if doc.Alternatives == nil {
		return nil, malformed("alternatives list not found")
	}
	for i, alt := range doc.Alternatives.Alternatives {
		id := strings.TrimSpace(alt.ID)
		if id == "" {
			return nil, malformed("alternative %d has no id", i+1)
		}
		a := digraph.Action{ID: id, Comment: alt.Description.comment()}
		if alt.Name != nil {
			a.Name = *alt.Name
		}
		if err := g.AddAction(a); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "alternative %d", i+1)
		}
	}

	if doc.Comparisons != nil {
		for i, p := range doc.Comparisons.Pairs {
			from, to := strings.TrimSpace(p.Initial), strings.TrimSpace(p.Terminal)
			v, ok := p.Value.Float()
			if !ok {
				return nil, malformed("pair %d (%s, %s) has no readable value", i+1, from, to)
			}
			if err := g.Store(from, to, v); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "pair %d", i+1)
			}
		}
	}

	out := &Document{Graph: g}
	if doc.Project != nil {
		out.Project = doc.Project.toProject()
	}
	if doc.Comparisons != nil {
		out.Project.RelationName = doc.Comparisons.Name
	}
	out.Type = digraph.TypeFromProjectID(out.Project.ID)
	return out, nil
}

func decodeDomain(c *xmlComparisons) (valuation.Domain, error) {
	if c == nil || c.Valuation == nil {
		return valuation.Domain{}, malformed("valuation domain not found")
	}
	min, ok := c.Valuation.Minimum.Float()
	if !ok {
		return valuation.Domain{}, malformed("valuation minimum missing or unreadable")
	}
	max, ok := c.Valuation.Maximum.Float()
	if !ok {
		return valuation.Domain{}, malformed("valuation maximum missing or unreadable")
	}
	d, err := valuation.New(min, max)
	if err != nil {
		return valuation.Domain{}, errors.Wrap(errors.ErrCodeMalformedDocument, err, "valuation domain")
	}
	return d, nil
}

// comment picks the <comment> child, else the first child of any name.
func (d *xmlDescription) comment() string {
	if d == nil || len(d.Children) == 0 {
		return ""
	}
	for _, c := range d.Children {
		if c.XMLName.Local == "comment" {
			return strings.TrimSpace(c.Text)
		}
	}
	return strings.TrimSpace(d.Children[0].Text)
}

func (p *xmlProject) toProject() Project {
	author := p.User
	if author == "" {
		author = p.Author
	}
	return Project{
		ID:      p.ID,
		Name:    p.Name,
		Title:   strings.TrimSpace(p.Title),
		Author:  strings.TrimSpace(author),
		Version: strings.TrimSpace(p.Version),
	}
}

func malformed(format string, args ...any) error {
	return errors.New(errors.ErrCodeMalformedDocument, format, args...)
}
