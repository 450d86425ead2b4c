package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses any run of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// NormalizeName is the uniqueness key for person profiles. On top of
// NormalizeText it strips trailing punctuation ("John?" and "john" collide).
func NormalizeName(name string) string {
	return strings.TrimRightFunc(NormalizeText(name), func(r rune) bool {
		return unicode.IsPunct(r) && r != '\'' && r != '-'
	})
}

// Truncate returns at most n runes of s, for previews and titles.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
