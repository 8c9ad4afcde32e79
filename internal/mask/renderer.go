// Package mask renders reason templates into the justification text pasted into
// a work order. Tokens are bracketed ("[NOME]", "[DATA/HORA 2]") and resolved
// through a token.Normalizer against the operator's field values.
package mask

import (
	"regexp"
	"strings"

	"github.com/cristianoliveira/noshow/internal/token"
)

// ValueMap holds operator input keyed by effective field key (date, date_2, ...).
type ValueMap map[string]string

// Get returns the trimmed value for key.
func (v ValueMap) Get(key string) string {
	return strings.TrimSpace(v[key])
}

var (
	tokenPattern        = regexp.MustCompile(`\[([^\]]+)\]`)
	whitespaceRunRe     = regexp.MustCompile(`\s{2,}`)
	spaceBeforePeriodRe = regexp.MustCompile(`\s+\.`)
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPolicy sets the unresolved token policy. An empty policy keeps the default.
func WithPolicy(p Policy) Option {
	return func(r *Renderer) {
		if p != "" {
			r.policy = p
		}
	}
}

// Renderer substitutes tokens in templates. It is stateless between calls.
type Renderer struct {
	normalizer *token.Normalizer
	policy     Policy
}

// NewRenderer creates a renderer. Without options unresolved tokens are kept.
func NewRenderer(n *token.Normalizer, opts ...Option) *Renderer {
	if n == nil {
		n = token.NewNormalizer(token.DefaultSynonyms())
	}
	r := &Renderer{normalizer: n, policy: PolicyKeep}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the unresolved token policy in effect.
func (r *Renderer) Policy() Policy {
	return r.policy
}

// Tokens returns every bracketed token in template, left to right, brackets
// included. Identical tokens appear once per occurrence.
func Tokens(template string) []string {
	return tokenPattern.FindAllString(template, -1)
}

// Resolve looks up the value for one bracketed token. raw may be given with or
// without brackets.
func (r *Renderer) Resolve(raw string, values ValueMap) Resolution {
	res, _ := r.resolve(raw, values)
	return res
}

// Trace is Resolve plus the keys attempted, in order.
func (r *Renderer) Trace(raw string, values ValueMap) (Resolution, []Step) {
	return r.resolve(raw, values)
}

func (r *Renderer) resolve(raw string, values ValueMap) (Resolution, []Step) {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	bracketed := "[" + inner + "]"
	unresolved := Resolution{Kind: Unresolved, Raw: bracketed}

	key := r.normalizer.Normalize(inner)
	if key.Empty() {
		return unresolved, nil
	}

	if key.Composite {
		dateKey, hourKey := key.Parts()
		date, hour := values.Get(dateKey), values.Get(hourKey)
		steps := []Step{{Key: dateKey, Found: date != ""}, {Key: hourKey, Found: hour != ""}}
		return Resolution{Kind: CompositeResolved, Raw: bracketed, Key: key.String(), Value: joinDateHour(date, hour)}, steps
	}

	var steps []Step
	for _, candidate := range []string{key.Name, token.Slug(inner)} {
		if len(steps) > 0 && steps[len(steps)-1].Key == candidate {
			continue
		}
		value := values.Get(candidate)
		steps = append(steps, Step{Key: candidate, Found: value != ""})
		if value != "" {
			return Resolution{Kind: Resolved, Raw: bracketed, Key: candidate, Value: value}, steps
		}
	}
	return unresolved, steps
}

// joinDateHour never leaves a dangling separator.
func joinDateHour(date, hour string) string {
	switch {
	case date != "" && hour != "":
		return date + " - " + hour
	case date != "":
		return date
	default:
		return hour
	}
}

// Render resolves every token of template against values and returns the
// cleaned text. It never fails: missing values fall under the renderer policy.
func (r *Renderer) Render(template string, values ValueMap) string {
	text := template
	cursor := 0
	for _, raw := range Tokens(template) {
		res := r.Resolve(raw, values)
		replacement := res.Value
		if res.Kind == Unresolved {
			replacement = r.policy.apply(raw)
		}

		idx := strings.Index(text[cursor:], raw)
		if idx < 0 {
			continue
		}
		idx += cursor
		text = text[:idx] + replacement + text[idx+len(raw):]
		cursor = idx + len(replacement)
	}
	return Cleanup(text)
}

// Cleanup collapses whitespace runs, drops spaces before periods and trims.
func Cleanup(text string) string {
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	text = spaceBeforePeriodRe.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}
