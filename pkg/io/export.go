package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

// Format names an on-disk document format.
type Format string

const (
	FormatXML    Format = "xml"
	FormatBundle Format = "bundle"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXML, FormatBundle:
		return f, nil
	case "json":
		return FormatBundle, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want xml or bundle)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatBundle
	}
	return FormatXML
}

// Snapshot is everything needed to write a document.
type Snapshot struct {
	Graph    *digraph.Digraph
	Pairwise PairwiseTable
	Metadata xmcda.Metadata
}

// Write encodes s in the given format to w.
func Write(w io.Writer, s Snapshot, format Format) error {
	switch format {
	case FormatXML:
		return xmcda.Encode(w, s.Graph, s.Metadata)
	case FormatBundle:
		return writeBundle(w, s)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown format %q", format)
}

func writeBundle(w io.Writer, s Snapshot) error {
	var doc bytes.Buffer
	if err := xmcda.Encode(&doc, s.Graph, s.Metadata); err != nil {
		return err
	}
	pairwise, err := formatPairwise(s.Pairwise)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Bundle{XMCDA2: doc.String(), Pairwise: pairwise}); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return nil
}

// Export writes s to path in the format implied by its extension.
// The file is only replaced once the document encoded successfully.
func Export(path string, s Snapshot) error {
	var buf bytes.Buffer
	if err := Write(&buf, s, FormatFromPath(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
