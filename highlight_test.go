package sitesearch

import (
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := map[string]struct {
		text     string
		query    string
		expected string
	}{
		"empty_query": {
			text:     "Умная розетка",
			query:    "",
			expected: "Умная розетка",
		},
		"empty_text": {
			text:     "",
			query:    "розетка",
			expected: "",
		},
		"basic_match": {
			text:     "Умная розетка",
			query:    "розетка",
			expected: "Умная <mark>розетка</mark>",
		},
		"case_insensitive_preserves_original": {
			text:     "Умная РОЗЕТКА",
			query:    "розетка",
			expected: "Умная <mark>РОЗЕТКА</mark>",
		},
		"multiple_occurrences": {
			text:     "розетка и ещё розетка",
			query:    "розетка",
			expected: "<mark>розетка</mark> и ещё <mark>розетка</mark>",
		},
		"multiple_words": {
			text:     "умная розетка xiaomi",
			query:    "умная xiaomi",
			expected: "<mark>умная</mark> розетка <mark>xiaomi</mark>",
		},
		"short_words_skipped": {
			text:     "а и б",
			query:    "а и",
			expected: "а и б",
		},
		"no_match": {
			text:     "робот пылесос",
			query:    "розетка",
			expected: "робот пылесос",
		},
		"latin_match": {
			text:     "Xiaomi Mi Smart Plug",
			query:    "xiaomi",
			expected: "<mark>Xiaomi</mark> Mi Smart Plug",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Highlight(tc.text, tc.query)
			if got != tc.expected {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tc.text, tc.query, got, tc.expected)
			}
		})
	}
}

func TestHighlightContainsMark(t *testing.T) {
	got := Highlight("Умная розетка", "розетка")
	if !strings.Contains(got, "<mark>розетка</mark>") {
		t.Errorf("Highlight output %q does not wrap the matched substring", got)
	}
}
