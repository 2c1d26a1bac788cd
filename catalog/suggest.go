package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/letmevibethatforyou/sitesearch"
)

// Per-source suggestion caps, applied before the overall limit.
const (
	maxHistorySuggestions  = 3
	maxProductSuggestions  = 5
	maxBrandSuggestions    = 3
	maxCategorySuggestions = 3
)

// Suggest assembles autocomplete suggestions for a partially typed query.
// Candidates are gathered in fixed priority order: past searches from
// history, then product names, then distinct brands, then distinct
// categories, each source capped independently. The combined list is
// deduplicated by case-insensitive text (first occurrence wins) and
// truncated to the configured maximum (default 8, override with
// sitesearch.WithMaxSuggestions).
//
// History entries are expected most-recent-first, as returned by the
// history store. Queries shorter than two runes produce no suggestions.
func (c *Catalog) Suggest(query string, history []sitesearch.HistoryEntry, opts ...sitesearch.SearchOption) []sitesearch.Suggestion {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return nil
	}

	cfg := &sitesearch.SearchConfig{}
	for _, opt := range opts {
		opt.Apply(cfg)
	}
	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = sitesearch.DefaultMaxSuggestions
	}

	normalized := sitesearch.Normalize(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var candidates []sitesearch.Suggestion

	// Past searches, most recent first.
	count := 0
	for _, entry := range history {
		if count >= maxHistorySuggestions {
			break
		}
		if !strings.Contains(sitesearch.Normalize(entry.Query), normalized) {
			continue
		}
		candidates = append(candidates, sitesearch.Suggestion{
			ID:    "history-" + entry.ID,
			Text:  entry.Query,
			Type:  sitesearch.SuggestionQuery,
			Count: entry.ResultsCount,
		})
		count++
	}

	// Products matched by name or brand.
	count = 0
	for _, p := range c.products {
		if count >= maxProductSuggestions {
			break
		}
		if !strings.Contains(sitesearch.Normalize(p.Name), normalized) &&
			!strings.Contains(sitesearch.Normalize(p.Brand), normalized) {
			continue
		}
		candidates = append(candidates, sitesearch.Suggestion{
			ID:       "product-" + p.ID,
			Text:     p.Name,
			Type:     sitesearch.SuggestionProduct,
			Category: p.Category,
		})
		count++
	}

	// Distinct brands.
	count = 0
	seenBrands := make(map[string]struct{})
	for _, p := range c.products {
		if count >= maxBrandSuggestions {
			break
		}
		if p.Brand == "" || !strings.Contains(sitesearch.Normalize(p.Brand), normalized) {
			continue
		}
		key := strings.ToLower(p.Brand)
		if _, seen := seenBrands[key]; seen {
			continue
		}
		seenBrands[key] = struct{}{}
		candidates = append(candidates, sitesearch.Suggestion{
			ID:   "brand-" + key,
			Text: p.Brand,
			Type: sitesearch.SuggestionBrand,
		})
		count++
	}

	// Distinct categories.
	count = 0
	seenCategories := make(map[string]struct{})
	for _, p := range c.products {
		if count >= maxCategorySuggestions {
			break
		}
		if p.Category == "" || !strings.Contains(sitesearch.Normalize(p.Category), normalized) {
			continue
		}
		key := strings.ToLower(p.Category)
		if _, seen := seenCategories[key]; seen {
			continue
		}
		seenCategories[key] = struct{}{}
		candidates = append(candidates, sitesearch.Suggestion{
			ID:   "category-" + key,
			Text: p.Category,
			Type: sitesearch.SuggestionCategory,
		})
		count++
	}

	// Deduplicate by case-insensitive text, earlier sources winning, then
	// apply the overall cap.
	seenText := make(map[string]struct{}, len(candidates))
	suggestions := make([]sitesearch.Suggestion, 0, cfg.MaxSuggestions)
	for _, cand := range candidates {
		if len(suggestions) >= cfg.MaxSuggestions {
			break
		}
		key := strings.ToLower(cand.Text)
		if _, seen := seenText[key]; seen {
			continue
		}
		seenText[key] = struct{}{}
		suggestions = append(suggestions, cand)
	}

	return suggestions
}
