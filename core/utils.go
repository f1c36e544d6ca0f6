package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strips combining marks after NFD decomposition
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// đ/Đ carry no combining mark and survive NFD stripping
var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CollapseWhitespace replaces every internal whitespace run in `s` with a
// single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSearchText lowers `s`, strips diacritics and collapses whitespace.
// The catalog is Vietnamese text; users routinely type without diacritics,
// so both sides of every search comparison go through this.
func NormalizeSearchText(s string) string {
	if stripped, _, err := transform.String(markStripper, s); err == nil {
		s = stripped
	}
	s = dReplacer.Replace(s)
	return strings.ToLower(CollapseWhitespace(s))
}
