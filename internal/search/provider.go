// Package search provides a unified search abstraction for filtering catalog
// reasons. It supports multiple search strategies (substring, regex, token-based)
// through a common Provider interface shared by the CLI and the TUI.
package search

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/token"
)

// Searchable reason fields.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldAction    = "action"
	FieldUsage     = "usage"
	FieldExamples  = "examples"
	FieldLabels    = "fields"
	FieldTemplates = "templates"
)

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, regex, token-based, etc.)
// to match reasons against search queries.
type Provider interface {
	// Match returns true if the reason matches the search query.
	Match(entry catalog.ReasonEntry, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	// CaseInsensitive folds case and accents, so "numero" finds "Número".
	CaseInsensitive bool
	Fields          []string
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldID, FieldTitle, FieldAction, FieldUsage, FieldExamples},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case- and accent-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "id", "title", "action", "usage", "examples", "fields", "templates".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Modes lists the provider names accepted by New.
func Modes() []string {
	return []string{"token", "substring", "regex"}
}

// New returns the provider registered under mode.
func New(mode string, opts ...Option) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "token":
		return NewTokenProvider(opts...), nil
	case "substring":
		return NewSubstringProvider(opts...), nil
	case "regex":
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("invalid search mode %q: expected one of %s", mode, strings.Join(Modes(), ", "))
	}
}

// Filter returns the entries p matches, in catalog order.
func Filter(p Provider, entries []catalog.ReasonEntry, query string) []catalog.ReasonEntry {
	matched := make([]catalog.ReasonEntry, 0, len(entries))
	for _, e := range entries {
		if p.Match(e, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// fieldValues returns the searchable text of one reason field.
func fieldValues(entry catalog.ReasonEntry, field string) []string {
	switch field {
	case FieldID:
		return []string{entry.ID}
	case FieldTitle:
		return []string{entry.Title}
	case FieldAction:
		return []string{entry.Action}
	case FieldUsage:
		return []string{entry.Usage}
	case FieldExamples:
		return entry.Examples
	case FieldLabels:
		return entry.EffectiveLabels()
	case FieldTemplates:
		values := make([]string, 0, len(entry.Variants))
		for _, v := range entry.Variants {
			values = append(values, v.Template)
		}
		return values
	}
	return nil
}

// normalize applies the case setting to text.
func (o Options) normalize(s string) string {
	if o.CaseInsensitive {
		return token.Fold(s)
	}
	return s
}
