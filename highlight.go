package sitesearch

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Highlight wraps every case-insensitive occurrence of each query word in
// text with <mark> markers. The words are taken from the normalized query
// (single-rune words discarded) but the substitution runs over the original,
// non-normalized text so the marked output preserves the source casing and
// punctuation.
//
// Each query word is a separate substitution pass over the output of the
// previous pass; overlapping matches across passes are not deduplicated.
// An empty query returns text unchanged.
func Highlight(text, query string) string {
	normalizedQuery := Normalize(query)
	if normalizedQuery == "" {
		return text
	}

	marked := text
	for _, word := range strings.Fields(normalizedQuery) {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}

		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
		marked = re.ReplaceAllString(marked, "<mark>${0}</mark>")
	}

	return marked
}
