// Package form turns operator input into value maps and checks required fields.
package form

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/mask"
	"github.com/cristianoliveira/noshow/internal/token"
)

// Warning reports one required field left blank.
type Warning struct {
	Key   string
	Label string
}

func (w Warning) String() string {
	return "required field missing: " + w.Label
}

// MissingFieldsError blocks a submission until every required field is filled.
type MissingFieldsError struct {
	Warnings []Warning
}

func (e *MissingFieldsError) Error() string {
	labels := make([]string, len(e.Warnings))
	for i, w := range e.Warnings {
		labels[i] = w.Label
	}
	return "required fields missing: " + strings.Join(labels, ", ")
}

// BuildValues pairs inputs with the entry's fields in order. Extra inputs are
// ignored, missing ones are blank. Values are trimmed.
func BuildValues(entry catalog.ReasonEntry, inputs []string) mask.ValueMap {
	keys := entry.EffectiveKeys()
	values := make(mask.ValueMap, len(keys))
	for i, key := range keys {
		if i < len(inputs) {
			values[key] = strings.TrimSpace(inputs[i])
			continue
		}
		values[key] = ""
	}
	return values
}

// ParseAssignments reads "key=value" pairs. A key may be an effective field key
// ("date_2"), a field display label ("Data 2") or any spelling the normalizer
// understands ("Nome Cliente"). Unknown keys are kept under their slug so the
// renderer's literal fallback can still find them.
func ParseAssignments(entry catalog.ReasonEntry, n *token.Normalizer, pairs []string) (mask.ValueMap, error) {
	values := BuildValues(entry, nil)
	keys := entry.EffectiveKeys()
	labels := entry.EffectiveLabels()

	byLabel := make(map[string]string, len(keys))
	for i, key := range keys {
		byLabel[token.Slug(labels[i])] = key
	}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("form: invalid assignment %q: expected key=value", pair)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("form: invalid assignment %q: empty key", pair)
		}
		values[resolveKey(name, values, byLabel, n)] = strings.TrimSpace(value)
	}
	return values, nil
}

func resolveKey(name string, known mask.ValueMap, byLabel map[string]string, n *token.Normalizer) string {
	if _, ok := known[name]; ok {
		return name
	}
	slug := token.Slug(name)
	if key, ok := byLabel[slug]; ok {
		return key
	}
	if key := n.Normalize(name); !key.Empty() && !key.Composite {
		if _, ok := known[key.Name]; ok {
			return key.Name
		}
	}
	return slug
}

// Required reports whether the field at index i of entry must be filled when
// variant is selected. Variant requirements only ever add to the field's own flag.
func Required(entry catalog.ReasonEntry, variant catalog.TemplateVariant, i int) bool {
	keys := entry.EffectiveKeys()
	if i < 0 || i >= len(keys) {
		return false
	}
	return entry.Fields[i].Required || variant.RequiresKey(keys[i])
}

// Validate lists the required fields of entry that are blank in values, in field order.
func Validate(entry catalog.ReasonEntry, variant catalog.TemplateVariant, values mask.ValueMap) []Warning {
	var warnings []Warning
	keys := entry.EffectiveKeys()
	labels := entry.EffectiveLabels()
	for i, key := range keys {
		if !Required(entry, variant, i) {
			continue
		}
		if values.Get(key) == "" {
			warnings = append(warnings, Warning{Key: key, Label: labels[i]})
		}
	}
	return warnings
}

// Check is Validate as an error: nil when nothing is missing.
func Check(entry catalog.ReasonEntry, variant catalog.TemplateVariant, values mask.ValueMap) error {
	if warnings := Validate(entry, variant, values); len(warnings) > 0 {
		return &MissingFieldsError{Warnings: warnings}
	}
	return nil
}
