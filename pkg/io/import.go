package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

// Bundle is the JSON envelope of the bundle format.
type Bundle struct {
	XMCDA2   string `json:"xmcda2"`
	Pairwise string `json:"pairwiseComparisions"`
}

// Loaded is a decoded document with its optional pairwise table.
type Loaded struct {
	Document *xmcda.Document
	Pairwise PairwiseTable
	Format   Format
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read decodes a bundle or a bare XMCDA-2 document from r.
//
// Every decoding failure is a MALFORMED_DOCUMENT error. Read does not
// close r.
func Read(r io.Reader) (*Loaded, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Unmarshal(data)
}

// Unmarshal is [Read] over an in-memory document.
func Unmarshal(data []byte) (*Loaded, error) {
	if Sniff(data) == FormatBundle {
		return readBundle(data)
	}
	doc, err := xmcda.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &Loaded{Document: doc, Format: FormatXML}, nil
}

// Sniff reports the format of data: a first non-blank '{' marks a bundle.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(data) > 0 && data[0] == '{' {
		return FormatBundle
	}
	return FormatXML
}

func readBundle(data []byte) (*Loaded, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedDocument, err, "decode bundle")
	}
	if b.XMCDA2 == "" {
		return nil, errors.New(errors.ErrCodeMalformedDocument, "bundle has no xmcda2 document")
	}
	pairwise, err := parsePairwise(b.Pairwise)
	if err != nil {
		return nil, err
	}
	doc, err := xmcda.Unmarshal([]byte(b.XMCDA2))
	if err != nil {
		return nil, err
	}
	return &Loaded{Document: doc, Pairwise: pairwise, Format: FormatBundle}, nil
}

// Import reads the document at path.
func Import(path string) (*Loaded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
