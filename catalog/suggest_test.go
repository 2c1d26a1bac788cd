package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/letmevibethatforyou/sitesearch"
)

func suggestHistory() []sitesearch.HistoryEntry {
	// Most recent first, as the history store returns them.
	return []sitesearch.HistoryEntry{
		{ID: "h1", Query: "умная розетка xiaomi", ResultsCount: 4},
		{ID: "h2", Query: "розетка с таймером", ResultsCount: 2},
		{ID: "h3", Query: "робот-пылесос", ResultsCount: 7},
		{ID: "h4", Query: "розетка уличная", ResultsCount: 1},
		{ID: "h5", Query: "розетка недорого", ResultsCount: 3},
	}
}

func TestSuggest(t *testing.T) {
	cat := testCatalog()

	t.Run("ShortQuery", func(t *testing.T) {
		for _, query := range []string{"", "р", " р ", "x"} {
			if got := cat.Suggest(query, nil); len(got) != 0 {
				t.Errorf("Expected no suggestions for %q, got %d", query, len(got))
			}
		}
	})

	t.Run("HistoryFirstCappedAtThree", func(t *testing.T) {
		suggestions := cat.Suggest("розетка", suggestHistory())
		if len(suggestions) == 0 {
			t.Fatal("Expected suggestions")
		}

		var historySuggestions []sitesearch.Suggestion
		for _, s := range suggestions {
			if s.Type == sitesearch.SuggestionQuery {
				historySuggestions = append(historySuggestions, s)
			}
		}

		// Four history entries contain the input; only the three most
		// recent survive the per-source cap.
		if len(historySuggestions) != 3 {
			t.Fatalf("Expected 3 history suggestions, got %d", len(historySuggestions))
		}
		expected := []string{"умная розетка xiaomi", "розетка с таймером", "розетка уличная"}
		for i, want := range expected {
			if historySuggestions[i].Text != want {
				t.Errorf("History suggestion %d: got %q, want %q", i, historySuggestions[i].Text, want)
			}
		}
		if historySuggestions[0].Count != 4 {
			t.Errorf("Expected count 4 carried from history, got %d", historySuggestions[0].Count)
		}

		// History suggestions come before everything else.
		if suggestions[0].Type != sitesearch.SuggestionQuery {
			t.Errorf("Expected history suggestion first, got %s", suggestions[0].Type)
		}
	})

	t.Run("ProductByNameOrBrand", func(t *testing.T) {
		suggestions := cat.Suggest("xiaomi", nil)

		var products, brands []sitesearch.Suggestion
		for _, s := range suggestions {
			switch s.Type {
			case sitesearch.SuggestionProduct:
				products = append(products, s)
			case sitesearch.SuggestionBrand:
				brands = append(brands, s)
			}
		}

		// Both Xiaomi products match by name or brand.
		if len(products) != 2 {
			t.Errorf("Expected 2 product suggestions, got %d", len(products))
		}
		for _, p := range products {
			if p.Category == "" {
				t.Errorf("Expected product suggestion to carry category: %+v", p)
			}
		}

		// One distinct brand.
		if len(brands) != 1 || !strings.EqualFold(brands[0].Text, "xiaomi") {
			t.Errorf("Expected one xiaomi brand suggestion, got %+v", brands)
		}
	})

	t.Run("CategorySuggestions", func(t *testing.T) {
		suggestions := cat.Suggest("освещение", nil)

		found := false
		for _, s := range suggestions {
			if s.Type == sitesearch.SuggestionCategory && s.Text == "освещение" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a category suggestion, got %+v", suggestions)
		}
	})

	t.Run("CaseInsensitiveDedup", func(t *testing.T) {
		history := []sitesearch.HistoryEntry{
			{ID: "h1", Query: "xiaomi", ResultsCount: 2},
		}
		suggestions := cat.Suggest("xiaomi", history)

		seen := make(map[string]int)
		for _, s := range suggestions {
			seen[strings.ToLower(s.Text)]++
		}
		for text, n := range seen {
			if n > 1 {
				t.Errorf("Suggestion text %q appears %d times", text, n)
			}
		}

		// The history entry "xiaomi" wins over the brand "Xiaomi".
		for _, s := range suggestions {
			if strings.EqualFold(s.Text, "xiaomi") && s.Type != sitesearch.SuggestionQuery {
				t.Errorf("Expected the history suggestion to win the dedup, got type %s", s.Type)
			}
		}
	})

	t.Run("CapAppliesAcrossSources", func(t *testing.T) {
		c := New()
		for i := 0; i < 10; i++ {
			c.AddProduct(Product{
				ID:       fmt.Sprintf("p%d", i),
				Name:     fmt.Sprintf("Розетка модель %d", i),
				Brand:    fmt.Sprintf("Розетка-бренд %d", i),
				Category: fmt.Sprintf("розетка тип %d", i),
			})
		}

		history := suggestHistory()

		suggestions := c.Suggest("розетка", history)
		if len(suggestions) > sitesearch.DefaultMaxSuggestions {
			t.Errorf("Expected at most %d suggestions, got %d", sitesearch.DefaultMaxSuggestions, len(suggestions))
		}

		limited := c.Suggest("розетка", history, sitesearch.WithMaxSuggestions(3))
		if len(limited) != 3 {
			t.Errorf("Expected 3 suggestions with override, got %d", len(limited))
		}
	})
}
