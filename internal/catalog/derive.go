package catalog

import (
	"strconv"
	"strings"

	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/token"
)

// DeriveFields builds required field definitions from the tokens of template,
// in order of first appearance. A date/hour token contributes both of its parts.
func DeriveFields(n *token.Normalizer, template string) []FieldDefinition {
	var out []FieldDefinition
	seen := make(map[string]bool)
	add := func(key, label string) {
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, FieldDefinition{Key: key, Label: label, Required: true})
	}

	for _, raw := range mask.Tokens(template) {
		inner := strings.TrimSpace(strings.Trim(raw, "[]"))
		key := n.Normalize(inner)
		if key.Empty() {
			continue
		}
		if key.Composite {
			dateKey, hourKey := key.Parts()
			add(dateKey, numbered("Data", key.Occurrence))
			add(hourKey, numbered("Hora", key.Occurrence))
			continue
		}
		add(key.Name, inner)
	}
	return out
}

func numbered(label string, occurrence int) string {
	if occurrence <= 1 {
		return label
	}
	return label + " " + strconv.Itoa(occurrence)
}
