package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var segmentSplit = regexp.MustCompile(`[^a-z0-9]+`)

// defaultSensitiveWords covers credentials and the personal data operators type
// into justification forms (customer and technician names).
var defaultSensitiveWords = []string{"secret", "password", "token", "auth", "credential", "name", "nome", "cliente"}

// redactor redacts sensitive values in log key-value pairs.
type redactor struct {
	sensitiveWords map[string]bool
}

func newRedactor(words ...string) *redactor {
	if len(words) == 0 {
		words = defaultSensitiveWords
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = true
	}
	return &redactor{sensitiveWords: m}
}

// redact returns a copy of the flattened pairs with sensitive values replaced.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		if key, ok := result[i].(string); ok && r.isSensitive(key) {
			result[i+1] = redacted
		}
	}
	return result
}

// isSensitive reports whether any non-alphanumeric separated segment of key is sensitive.
// "technician_name" matches, "filename" does not.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range segmentSplit.Split(strings.ToLower(key), -1) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}
