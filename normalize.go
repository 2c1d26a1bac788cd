package sitesearch

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for comparison: it lowercases, folds the
// common Cyrillic spelling variants ё->е and й->и, replaces every rune
// that is not a Cyrillic or Latin letter, digit, or space with a space,
// collapses runs of whitespace, and trims the ends.
//
// Normalize is pure and idempotent: normalizing an already-normalized
// string returns it unchanged. An empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	mapped := strings.Map(func(r rune) rune {
		switch r {
		case 'ё':
			return 'е'
		case 'й':
			return 'и'
		}
		if unicode.Is(unicode.Cyrillic, r) || unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	return strings.Join(strings.Fields(mapped), " ")
}
