package token

import (
	"regexp"
	"strconv"
	"strings"
)

// Key is the canonical form of a template token. Composite keys stand for a
// date/hour pair assembled from two fields; Occurrence is 1-based and only
// meaningful for composites.
type Key struct {
	Name       string
	Composite  bool
	Occurrence int
}

// Empty reports whether the token normalized to nothing.
func (k Key) Empty() bool {
	return k.Name == ""
}

// String renders the key as it would be written in a value map. Composite keys
// render as "date_time#N".
func (k Key) String() string {
	if k.Composite {
		return compositeDateTimeID + "#" + strconv.Itoa(k.Occurrence)
	}
	return k.Name
}

// Parts returns the date and hour keys a composite key reads from.
func (k Key) Parts() (date, hour string) {
	return Suffixed(KeyDate, k.Occurrence), Suffixed(KeyHour, k.Occurrence)
}

// Suffixed appends the occurrence suffix to base; occurrence 1 (or less) keeps base unchanged.
func Suffixed(base string, occurrence int) string {
	if occurrence <= 1 {
		return base
	}
	return base + "_" + strconv.Itoa(occurrence)
}

var (
	dateTimeRe = regexp.MustCompile(`^(?:data_hora|date_time)(?:_(\d+))?$`)
	dateRe     = regexp.MustCompile(`^(?:data|date)(?:_(\d+))?$`)
	hourRe     = regexp.MustCompile(`^(?:hora|hour)(?:_(\d+))?$`)
)

// Normalizer maps raw token text to canonical keys. It holds no mutable state
// and is safe for concurrent use.
type Normalizer struct {
	synonyms *Synonyms
}

// NewNormalizer creates a normalizer backed by syn. A nil table behaves as empty.
func NewNormalizer(syn *Synonyms) *Normalizer {
	if syn == nil {
		syn = NewSynonyms(nil)
	}
	return &Normalizer{synonyms: syn}
}

// Normalize canonicalizes raw token text (without brackets). Unknown tokens
// come back as their own slug.
func (n *Normalizer) Normalize(raw string) Key {
	slug := Slug(raw)
	if slug == "" {
		return Key{}
	}

	// The catalog spells this field a dozen ways; match on stems.
	if strings.Contains(slug, "descr") && strings.Contains(slug, "problem") {
		return Key{Name: KeyDescribeProblem}
	}

	if m := dateTimeRe.FindStringSubmatch(slug); m != nil {
		occurrence := parseOccurrence(m[1])
		return Key{Name: compositeDateTimeID, Composite: true, Occurrence: occurrence}
	}
	if m := dateRe.FindStringSubmatch(slug); m != nil {
		return Key{Name: Suffixed(KeyDate, parseOccurrence(m[1]))}
	}
	if m := hourRe.FindStringSubmatch(slug); m != nil {
		return Key{Name: Suffixed(KeyHour, parseOccurrence(m[1]))}
	}

	if canonical, ok := n.synonyms.Lookup(slug); ok {
		return Key{Name: canonical}
	}
	if describeVariants[slug] {
		return Key{Name: KeyDescribeProblem}
	}
	return Key{Name: slug}
}

// parseOccurrence defaults to 1 when the suffix is absent or unusable.
func parseOccurrence(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
