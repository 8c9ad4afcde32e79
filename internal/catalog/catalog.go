// Package catalog holds the reason entries an operator chooses from: guidance,
// the fields to fill in and the template variants rendered from them.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrReasonNotFound indicates that no reason matches the requested ID or title.
	ErrReasonNotFound = errors.New("reason not found")
	// ErrVariantNotFound indicates that the reason has no variant with the requested ID.
	ErrVariantNotFound = errors.New("template variant not found")
	// ErrInvalidCatalog indicates a structurally unusable catalog.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// FieldDefinition is one operator input of a reason entry.
type FieldDefinition struct {
	Key      string `toml:"key" yaml:"key" json:"key"`
	Label    string `toml:"label" yaml:"label" json:"label"`
	Required bool   `toml:"required" yaml:"required" json:"required"`
}

// TemplateVariant is one phrasing of a reason's justification text.
// ExtraRequired lists effective field keys that become required when the
// variant is selected, on top of the fields' own flags.
type TemplateVariant struct {
	ID            string   `toml:"id" yaml:"id" json:"id"`
	Label         string   `toml:"label" yaml:"label" json:"label"`
	Description   string   `toml:"description" yaml:"description" json:"description,omitempty"`
	ExtraRequired []string `toml:"required" yaml:"required" json:"extra_required,omitempty"`
	Template      string   `toml:"template" yaml:"template" json:"template"`
}

// RequiresKey reports whether the variant elevates key to required.
func (v TemplateVariant) RequiresKey(key string) bool {
	for _, k := range v.ExtraRequired {
		if k == key {
			return true
		}
	}
	return false
}

// ReasonEntry is one selectable no-show or cancellation cause.
type ReasonEntry struct {
	ID       string            `toml:"id" yaml:"id" json:"id"`
	Title    string            `toml:"title" yaml:"title" json:"title"`
	Action   string            `toml:"action" yaml:"action" json:"action"`
	Usage    string            `toml:"usage" yaml:"usage" json:"usage"`
	Examples []string          `toml:"examples" yaml:"examples" json:"examples,omitempty"`
	Fields   []FieldDefinition `toml:"fields" yaml:"fields" json:"fields"`
	Variants []TemplateVariant `toml:"variants" yaml:"variants" json:"variants"`
}

// EffectiveKeys returns one key per field, in field order. The second and later
// occurrences of a repeated base key get "_2", "_3", ... so that values for
// repeated fields never overwrite each other. A suffix already taken by a
// declared key (a catalog listing both "date_2" and a second "date") is skipped.
func (e ReasonEntry) EffectiveKeys() []string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return numberRepeats(keys, "_")
}

// EffectiveLabels returns one display label per field, numbering repeated labels
// ("Data", "Data 2").
func (e ReasonEntry) EffectiveLabels() []string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = f.Label
	}
	return numberRepeats(labels, " ")
}

// numberRepeats suffixes repeated names with sep and an occurrence number,
// bumping the number until the result is unique among everything already emitted.
func numberRepeats(names []string, sep string) []string {
	seen := make(map[string]int, len(names))
	taken := make(map[string]bool, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		seen[name]++
		n := seen[name]
		candidate := name
		if n > 1 {
			candidate = name + sep + strconv.Itoa(n)
		}
		for taken[candidate] {
			n++
			candidate = name + sep + strconv.Itoa(n)
		}
		taken[candidate] = true
		out[i] = candidate
	}
	return out
}

// Variant returns the variant with the given ID; an empty ID selects the first.
func (e ReasonEntry) Variant(id string) (TemplateVariant, error) {
	if len(e.Variants) == 0 {
		return TemplateVariant{}, fmt.Errorf("catalog: reason %s: %w", e.ID, ErrVariantNotFound)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return e.Variants[0], nil
	}
	for _, v := range e.Variants {
		if v.ID == id {
			return v, nil
		}
	}
	return TemplateVariant{}, fmt.Errorf("catalog: reason %s: %w: %s", e.ID, ErrVariantNotFound, id)
}

// Catalog is an ordered, read-only set of reason entries.
type Catalog struct {
	entries []ReasonEntry
	byID    map[string]int
}

// New validates entries and builds a catalog. IDs must be unique, titles
// non-empty and every entry needs at least one variant.
func New(entries []ReasonEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]ReasonEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("catalog: entry %d: %w: empty id", i+1, ErrInvalidCatalog)
		case strings.TrimSpace(e.Title) == "":
			return nil, fmt.Errorf("catalog: entry %s: %w: empty title", e.ID, ErrInvalidCatalog)
		case len(e.Variants) == 0:
			return nil, fmt.Errorf("catalog: entry %s: %w: no template variants", e.ID, ErrInvalidCatalog)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog: %w: duplicate id %s", ErrInvalidCatalog, e.ID)
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []ReasonEntry {
	out := make([]ReasonEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks up an entry by ID, falling back to an exact title match.
func (c *Catalog) Get(idOrTitle string) (ReasonEntry, error) {
	needle := strings.TrimSpace(idOrTitle)
	if i, ok := c.byID[needle]; ok {
		return c.entries[i], nil
	}
	for _, e := range c.entries {
		if e.Title == needle {
			return e, nil
		}
	}
	return ReasonEntry{}, fmt.Errorf("catalog: %w: %s", ErrReasonNotFound, needle)
}
