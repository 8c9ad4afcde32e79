package search

import (
	"strings"

	"github.com/cristianoliveira/noshow/internal/catalog"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens.
// Each token must match at least one field (AND logic).
// A token written field:text only matches that field, e.g. "id:placa".
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all tokens match at least one field.
func (p *TokenProvider) Match(entry catalog.ReasonEntry, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	for _, tok := range tokens {
		fields := p.opts.Fields
		if name, text, ok := strings.Cut(tok, ":"); ok && text != "" && isField(name) {
			fields = []string{strings.ToLower(name)}
			tok = text
		}
		if !p.matchAny(entry, fields, p.opts.normalize(tok)) {
			return false
		}
	}

	return true
}

func (p *TokenProvider) matchAny(entry catalog.ReasonEntry, fields []string, tok string) bool {
	for _, field := range fields {
		for _, value := range fieldValues(entry, field) {
			if value != "" && strings.Contains(p.opts.normalize(value), tok) {
				return true
			}
		}
	}
	return false
}

func isField(name string) bool {
	switch strings.ToLower(name) {
	case FieldID, FieldTitle, FieldAction, FieldUsage, FieldExamples, FieldLabels, FieldTemplates:
		return true
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
