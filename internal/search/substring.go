package search

import (
	"strings"

	"github.com/cristianoliveira/noshow/internal/catalog"
)

// SubstringProvider provides substring-based search.
// Matches if any configured field contains the query as a substring.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(entry catalog.ReasonEntry, query string) bool {
	if query == "" {
		return true
	}

	searchQuery := p.opts.normalize(query)
	for _, field := range p.opts.Fields {
		for _, value := range fieldValues(entry, field) {
			if value == "" {
				continue
			}
			if strings.Contains(p.opts.normalize(value), searchQuery) {
				return true
			}
		}
	}

	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
