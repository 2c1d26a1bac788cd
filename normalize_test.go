package sitesearch

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"empty": {
			input:    "",
			expected: "",
		},
		"whitespace_only": {
			input:    "   \t\n  ",
			expected: "",
		},
		"lowercases": {
			input:    "Xiaomi Mi Home",
			expected: "xiaomi mi home",
		},
		"cyrillic_lowercases": {
			input:    "Умная Розетка",
			expected: "умная розетка",
		},
		"punctuation_stripped": {
			input:    "Умная РОЗЕТКА!!",
			expected: "умная розетка",
		},
		"folds_yo": {
			input:    "зелёный",
			expected: "зеленыи",
		},
		"folds_short_i": {
			input:    "чайник",
			expected: "чаиник",
		},
		"collapses_inner_whitespace": {
			input:    "умная   розетка \t wifi",
			expected: "умная розетка wifi",
		},
		"digits_kept": {
			input:    "mi 360 камера",
			expected: "mi 360 камера",
		},
		"symbols_become_separators": {
			input:    "wi-fi/умный_дом",
			expected: "wi fi умныи дом",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Умная РОЗЕТКА!!",
		"зелёный чайник",
		"Xiaomi Mi  Home 360°",
		"wi-fi/умный_дом",
		"  уже нормализовано  ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
