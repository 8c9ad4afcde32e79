package mask

import (
	"fmt"
	"strings"
)

// Policy decides what happens to a token that resolves to no value.
type Policy string

const (
	// PolicyKeep leaves the bracketed token in the text so the operator notices it.
	PolicyKeep Policy = "keep"
	// PolicyElide removes the token; whitespace cleanup absorbs the gap.
	PolicyElide Policy = "elide"
)

// ParsePolicy accepts "keep" or "elide" in any case. Empty input yields PolicyKeep.
func ParsePolicy(raw string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(PolicyKeep):
		return PolicyKeep, nil
	case string(PolicyElide):
		return PolicyElide, nil
	default:
		return PolicyKeep, fmt.Errorf("invalid unresolved policy %q: must be one of: elide, keep", raw)
	}
}

func (p Policy) apply(raw string) string {
	if p == PolicyElide {
		return ""
	}
	return raw
}
