// Package token canonicalizes the bracketed placeholders found in reason templates
// into stable field keys.
package token

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Anything outside letters (extended Latin included), digits, space, slash, hyphen and underscore.
	disallowedRe = regexp.MustCompile(`[^0-9a-zA-ZÀ-ÿ/ _-]+`)
	// Runs of anything that is not an ASCII word character once accents are folded.
	nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// foldAccents returns a fresh transformer on every call: a transform.Chain keeps
// internal buffers and must not be shared between goroutines.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slug reduces raw token text to a lowercase, accent-free, underscore separated key.
//
//	"DATA/HORA 2"          → "data_hora_2"
//	"Descrição do Problema" → "descricao_do_problema"
//	"  Número OS! "        → "numero_os"
//
// Slug never fails; input made only of disallowed characters yields "".
func Slug(raw string) string {
	s := disallowedRe.ReplaceAllString(raw, "")
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(foldAccents(), s); err == nil {
		s = folded
	}
	s = strings.ReplaceAll(s, "/", "_")
	s = nonWordRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Fold lowercases s and strips its accents without touching anything else, so
// "Número" and "numero" compare equal.
func Fold(s string) string {
	return StripAccents(strings.ToLower(s))
}

// StripAccents removes combining marks from s, keeping its case.
func StripAccents(s string) string {
	if folded, _, err := transform.String(foldAccents(), s); err == nil {
		return folded
	}
	return s
}
