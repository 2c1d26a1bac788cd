package sitesearch

import (
	"strings"
	"unicode/utf8"
)

// Match score contributions per query word.
const (
	scoreContains   = 10 // field text contains the word
	scoreOccurrence = 5  // per occurrence, when the word occurs more than once
	scorePrefix     = 15 // field text starts with the word
)

// FieldWeights declares the relative importance of an item's searchable
// fields. The weights are threaded through every Score call so callers can
// express field importance, but the current scorer does not apply them:
// every field contributes on the same scale. Applying them would reorder
// existing rankings, so they stay inert until ranking changes are wanted.
type FieldWeights struct {
	Title       float64
	Description float64
	Tags        float64
}

// DefaultFieldWeights is the weight set the catalog searchers pass to Score.
var DefaultFieldWeights = FieldWeights{
	Title:       3,
	Description: 1,
	Tags:        2,
}

// Score computes the relevance of fieldText against query. The result is
// always >= 0 and is 0 when the normalized query is empty or no query word
// matched.
//
// Both inputs are normalized first. The query is split into words; words of
// a single rune are discarded. Each remaining word contributes:
//
//   - +10 when the field text contains the word anywhere;
//   - +5 per occurrence when the word occurs more than once (a word found
//     twice adds +10 from this rule, a word found once adds nothing);
//   - +15 when the field text starts with the word.
//
// The weight argument is accepted but not applied; see FieldWeights.
func Score(fieldText, query string, weight float64) float64 {
	normalizedQuery := Normalize(query)
	if normalizedQuery == "" {
		return 0
	}

	text := Normalize(fieldText)

	var total float64
	for _, word := range strings.Fields(normalizedQuery) {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}

		if strings.Contains(text, word) {
			total += scoreContains
		}
		if n := strings.Count(text, word); n > 1 {
			total += float64(n) * scoreOccurrence
		}
		if strings.HasPrefix(text, word) {
			total += scorePrefix
		}
	}

	return total
}
