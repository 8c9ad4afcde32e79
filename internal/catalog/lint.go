package catalog

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/token"
)

// Issue is one authoring problem found by Lint.
type Issue struct {
	ReasonID  string
	VariantID string
	Token     string
	Message   string
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.ReasonID)
	if i.VariantID != "" {
		b.WriteString("/" + i.VariantID)
	}
	if i.Token != "" {
		b.WriteString(" " + i.Token)
	}
	b.WriteString(": " + i.Message)
	return b.String()
}

// Lint cross-checks template tokens against field keys. It reports tokens no
// field can fill, fields no template reads and variant requirements that name
// unknown fields. Tokens left unresolved render according to the renderer policy,
// so issues are warnings, not errors.
func Lint(entry ReasonEntry, n *token.Normalizer) []Issue {
	var issues []Issue
	known := make(map[string]bool, len(entry.Fields))
	for _, k := range entry.EffectiveKeys() {
		known[k] = true
	}
	used := make(map[string]bool, len(known))

	for _, v := range entry.Variants {
		for _, raw := range mask.Tokens(v.Template) {
			inner := strings.Trim(raw, "[]")
			key := n.Normalize(inner)
			switch {
			case key.Empty():
				issues = append(issues, Issue{entry.ID, v.ID, raw, "token is blank"})
			case key.Composite:
				dateKey, hourKey := key.Parts()
				for _, part := range []string{dateKey, hourKey} {
					if known[part] {
						used[part] = true
						continue
					}
					issues = append(issues, Issue{entry.ID, v.ID, raw, fmt.Sprintf("no field provides %q", part)})
				}
			case known[key.Name]:
				used[key.Name] = true
			case known[token.Slug(inner)]:
				used[token.Slug(inner)] = true
			default:
				issues = append(issues, Issue{entry.ID, v.ID, raw, fmt.Sprintf("no field provides %q", key.Name)})
			}
		}
		for _, k := range v.ExtraRequired {
			if !known[k] {
				issues = append(issues, Issue{entry.ID, v.ID, "", fmt.Sprintf("required key %q matches no field", k)})
			}
		}
	}

	labels := entry.EffectiveLabels()
	for i, k := range entry.EffectiveKeys() {
		if !used[k] {
			issues = append(issues, Issue{entry.ID, "", "", fmt.Sprintf("field %q (%s) is not used by any template", labels[i], k)})
		}
	}
	return issues
}

// LintCatalog runs Lint over every entry.
func LintCatalog(c *Catalog, n *token.Normalizer) []Issue {
	var issues []Issue
	for _, e := range c.Entries() {
		issues = append(issues, Lint(e, n)...)
	}
	return issues
}
