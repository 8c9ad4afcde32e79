package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cristianoliveira/noshow/internal/token"
)

// File extensions accepted by LoadFile.
const (
	FileExtTOML = ".toml"
	FileExtYAML = ".yaml"
	FileExtYML  = ".yml"
	FileExtXLSX = ".xlsx"
)

// fileCatalog mirrors the on-disk layout. Field keys may be omitted and
// required defaults to true, as in the built-in catalog.
type fileCatalog struct {
	Reasons []fileReason `toml:"reasons" yaml:"reasons"`
}

type fileReason struct {
	ID       string            `toml:"id" yaml:"id"`
	Title    string            `toml:"title" yaml:"title"`
	Action   string            `toml:"action" yaml:"action"`
	Usage    string            `toml:"usage" yaml:"usage"`
	Examples []string          `toml:"examples" yaml:"examples"`
	Fields   []fileField       `toml:"fields" yaml:"fields"`
	Variants []TemplateVariant `toml:"variants" yaml:"variants"`
}

type fileField struct {
	Key      string `toml:"key" yaml:"key"`
	Label    string `toml:"label" yaml:"label"`
	Required *bool  `toml:"required" yaml:"required"`
}

// LoadFile reads a catalog from a TOML, YAML or XLSX file, choosing the format
// by extension.
func LoadFile(path string, n *token.Normalizer) (*Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == FileExtXLSX {
		return LoadXLSX(path, n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data, ext, n)
}

// Parse decodes TOML or YAML catalog data. ext selects the decoder.
func Parse(data []byte, ext string, n *token.Normalizer) (*Catalog, error) {
	var raw fileCatalog
	var err error
	switch strings.ToLower(ext) {
	case FileExtTOML:
		err = toml.Unmarshal(data, &raw)
	case FileExtYAML, FileExtYML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("catalog: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(raw.Reasons) == 0 {
		return nil, fmt.Errorf("catalog: %w: no reasons defined", ErrInvalidCatalog)
	}

	entries := make([]ReasonEntry, 0, len(raw.Reasons))
	for _, r := range raw.Reasons {
		entries = append(entries, r.toEntry(n))
	}
	return New(entries)
}

func (r fileReason) toEntry(n *token.Normalizer) ReasonEntry {
	entry := ReasonEntry{
		ID:       r.ID,
		Title:    r.Title,
		Action:   r.Action,
		Usage:    r.Usage,
		Examples: r.Examples,
		Variants: r.Variants,
	}
	for _, f := range r.Fields {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			key = n.Normalize(f.Label).Name
		}
		required := true
		if f.Required != nil {
			required = *f.Required
		}
		entry.Fields = append(entry.Fields, FieldDefinition{Key: key, Label: f.Label, Required: required})
	}
	for i, v := range entry.Variants {
		if strings.TrimSpace(v.ID) == "" {
			entry.Variants[i].ID = fmt.Sprintf("variant_%d", i+1)
		}
		if strings.TrimSpace(v.Label) == "" {
			entry.Variants[i].Label = entry.Variants[i].ID
		}
	}
	return entry
}
