package xmcda

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// Valuation encodings for the domain bounds.
const (
	ValuationStandard = "standard"
	ValuationInteger  = "integer"
)

// Metadata describes the header of an exported document.
// Zero fields are replaced by the defaults in [Metadata.WithDefaults].
type Metadata struct {
	FileName      string `toml:"file_name" yaml:"file_name" json:"fileName,omitempty"`
	Name          string `toml:"name" yaml:"name" json:"name,omitempty"`
	RelationName  string `toml:"relation_name" yaml:"relation_name" json:"relationName,omitempty"`
	RelationType  string `toml:"relation_type" yaml:"relation_type" json:"relationType,omitempty"`
	Category      string `toml:"category" yaml:"category" json:"category,omitempty"`
	Subcategory   string `toml:"subcategory" yaml:"subcategory" json:"subcategory,omitempty"`
	Author        string `toml:"author" yaml:"author" json:"author,omitempty"`
	Reference     string `toml:"reference" yaml:"reference" json:"reference,omitempty"`
	ValuationType string `toml:"valuation_type" yaml:"valuation_type" json:"valuationType,omitempty"`
}

// DefaultMetadata returns the header written when nothing is configured.
func DefaultMetadata() Metadata {
	return Metadata{
		FileName:      "general_digraph",
		Name:          "general",
		RelationName:  "R",
		RelationType:  "general",
		Category:      "random",
		Subcategory:   "valued",
		Author:        "digraphs Module RB",
		Reference:     "saved from Javascript",
		ValuationType: ValuationStandard,
	}
}

// WithDefaults returns m with every empty field set to its default.
func (m Metadata) WithDefaults() Metadata {
	d := DefaultMetadata()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&m.FileName, d.FileName)
	fill(&m.Name, d.Name)
	fill(&m.RelationName, d.RelationName)
	fill(&m.RelationType, d.RelationType)
	fill(&m.Category, d.Category)
	fill(&m.Subcategory, d.Subcategory)
	fill(&m.Author, d.Author)
	fill(&m.Reference, d.Reference)
	fill(&m.ValuationType, d.ValuationType)
	return m
}

// Validate checks the valuation type.
func (m Metadata) Validate() error {
	switch m.ValuationType {
	case "", ValuationStandard, ValuationInteger:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown valuation type %q (want %s or %s)",
		m.ValuationType, ValuationStandard, ValuationInteger)
}

// MetadataFromProject returns the metadata that re-exports a decoded
// document under its own header.
func MetadataFromProject(p Project) Metadata {
	return Metadata{
		FileName:     p.ID,
		Name:         p.Name,
		RelationName: p.RelationName,
		Author:       p.Author,
		Reference:    p.Version,
	}
}

// LoadMetadata reads export metadata from a TOML (.toml) or YAML
// (.yaml, .yml) file. Missing fields are left empty.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var m Metadata
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return Metadata{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", filepath.Base(path))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Metadata{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", filepath.Base(path))
		}
	default:
		return Metadata{}, errors.New(errors.ErrCodeInvalidInput, "unsupported metadata format %q (want .toml or .yaml)", ext)
	}
	if err := m.Validate(); err != nil {
		return Metadata{}, err
	}
	return m, nil
}
