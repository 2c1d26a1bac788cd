package catalog

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/letmevibethatforyou/sitesearch"
)

// articleBodyLimit bounds how much of an article body is scored.
const articleBodyLimit = 500

// SearchProducts scores every product against the query and returns the
// matching ones as SearchResults, sorted by relevance descending. An empty
// or whitespace-only query returns an empty list.
func (c *Catalog) SearchProducts(query string) []sitesearch.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	w := sitesearch.DefaultFieldWeights

	var results []sitesearch.SearchResult
	for _, p := range c.products {
		total := sitesearch.Score(p.Name, query, w.Title) +
			sitesearch.Score(p.Description, query, w.Description) +
			sitesearch.Score(p.Brand, query, w.Tags) +
			sitesearch.Score(strings.Join(p.Tags, " "), query, w.Tags) +
			sitesearch.Score(p.Category, query, w.Tags)
		if total <= 0 {
			continue
		}

		results = append(results, sitesearch.SearchResult{
			ID:              p.ID,
			Title:           p.Name,
			Excerpt:         p.Description,
			Type:            sitesearch.ContentProduct,
			URL:             p.URL,
			Category:        p.Category,
			Tags:            p.Tags,
			RelevanceScore:  total,
			HighlightedText: sitesearch.Highlight(p.Description, query),
			Image:           p.Image,
			Price:           p.Price,
			Rating:          p.Rating,
		})
	}

	sortByRelevance(results)
	return results
}

// SearchArticles scores every article against the query. The article body
// contributes only its first 500 runes.
func (c *Catalog) SearchArticles(query string) []sitesearch.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	w := sitesearch.DefaultFieldWeights

	var results []sitesearch.SearchResult
	for _, a := range c.articles {
		total := sitesearch.Score(a.Title, query, w.Title) +
			sitesearch.Score(a.Excerpt, query, w.Description) +
			sitesearch.Score(firstRunes(a.Body, articleBodyLimit), query, w.Description) +
			sitesearch.Score(strings.Join(a.Tags, " "), query, w.Tags) +
			sitesearch.Score(a.Category, query, w.Tags)
		if total <= 0 {
			continue
		}

		results = append(results, sitesearch.SearchResult{
			ID:              a.ID,
			Title:           a.Title,
			Excerpt:         a.Excerpt,
			Type:            sitesearch.ContentArticle,
			URL:             a.URL,
			Category:        a.Category,
			Tags:            a.Tags,
			RelevanceScore:  total,
			HighlightedText: sitesearch.Highlight(a.Excerpt, query),
			PublishedAt:     timePtr(a.PublishedAt),
		})
	}

	sortByRelevance(results)
	return results
}

// SearchNews scores every news item against the query.
func (c *Catalog) SearchNews(query string) []sitesearch.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	w := sitesearch.DefaultFieldWeights

	var results []sitesearch.SearchResult
	for _, n := range c.news {
		total := sitesearch.Score(n.Title, query, w.Title) +
			sitesearch.Score(n.Excerpt, query, w.Description) +
			sitesearch.Score(n.Category, query, w.Tags) +
			sitesearch.Score(strings.Join(n.Tags, " "), query, w.Tags)
		if total <= 0 {
			continue
		}

		results = append(results, sitesearch.SearchResult{
			ID:              n.ID,
			Title:           n.Title,
			Excerpt:         n.Excerpt,
			Type:            sitesearch.ContentNews,
			URL:             n.URL,
			Category:        n.Category,
			Tags:            n.Tags,
			RelevanceScore:  total,
			HighlightedText: sitesearch.Highlight(n.Excerpt, query),
			PublishedAt:     timePtr(n.PublishedAt),
		})
	}

	sortByRelevance(results)
	return results
}

// SearchRatings scores every rating entry against the query.
func (c *Catalog) SearchRatings(query string) []sitesearch.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	w := sitesearch.DefaultFieldWeights

	var results []sitesearch.SearchResult
	for _, r := range c.ratings {
		total := sitesearch.Score(r.Title, query, w.Title) +
			sitesearch.Score(r.Excerpt, query, w.Description) +
			sitesearch.Score(r.Category, query, w.Tags) +
			sitesearch.Score(strings.Join(r.Tags, " "), query, w.Tags)
		if total <= 0 {
			continue
		}

		results = append(results, sitesearch.SearchResult{
			ID:              r.ID,
			Title:           r.Title,
			Excerpt:         r.Excerpt,
			Type:            sitesearch.ContentRating,
			URL:             r.URL,
			Category:        r.Category,
			Tags:            r.Tags,
			RelevanceScore:  total,
			HighlightedText: sitesearch.Highlight(r.Excerpt, query),
			Rating:          r.Score,
			PublishedAt:     timePtr(r.PublishedAt),
		})
	}

	sortByRelevance(results)
	return results
}

// Search implements the sitesearch.Searcher interface. It merges the four
// per-type result lists, re-sorts them by relevance descending, then applies
// type filtering and pagination from the options.
func (c *Catalog) Search(ctx context.Context, query string, opts ...sitesearch.SearchOption) (*sitesearch.Results, error) {
	startTime := time.Now()

	ctx, span := c.tracer.Start(ctx, "catalog.search",
		trace.WithAttributes(
			attribute.String("search.query", query),
		),
	)
	defer span.End()

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		span.SetStatus(codes.Error, "search canceled")
		return nil, sitesearch.ErrCanceled
	default:
	}

	cfg := &sitesearch.SearchConfig{}
	for _, opt := range opts {
		opt.Apply(cfg)
	}
	if cfg.Limit == 0 {
		cfg.Limit = 10
	}

	var merged []sitesearch.SearchResult
	if includeType(cfg, sitesearch.ContentProduct) {
		merged = append(merged, c.SearchProducts(query)...)
	}
	if includeType(cfg, sitesearch.ContentArticle) {
		merged = append(merged, c.SearchArticles(query)...)
	}
	if includeType(cfg, sitesearch.ContentNews) {
		merged = append(merged, c.SearchNews(query)...)
	}
	if includeType(cfg, sitesearch.ContentRating) {
		merged = append(merged, c.SearchRatings(query)...)
	}

	sortByRelevance(merged)

	total := int64(len(merged))
	start := cfg.Offset
	end := cfg.Offset + cfg.Limit
	if end > len(merged) {
		end = len(merged)
	}
	if start > len(merged) {
		start = len(merged)
	}

	results := &sitesearch.Results{
		Items: make([]sitesearch.SearchResult, 0, end-start),
		Total: total,
		Query: query,
		Took:  time.Since(startTime).Milliseconds(),
	}

	maxScore := 0.0
	for i := start; i < end; i++ {
		if merged[i].RelevanceScore > maxScore {
			maxScore = merged[i].RelevanceScore
		}
		results.Items = append(results.Items, merged[i])
	}
	results.MaxScore = maxScore

	if end < len(merged) {
		nextOffset := end
		results.NextOffset = &nextOffset
	}

	span.SetAttributes(attribute.Int64("search.total", total))
	span.SetStatus(codes.Ok, "search completed")

	return results, nil
}

// sortByRelevance sorts results by score descending. The sort is stable so
// ties retain encounter order.
func sortByRelevance(results []sitesearch.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
}

// includeType reports whether the config's type filter admits t.
func includeType(cfg *sitesearch.SearchConfig, t sitesearch.ContentType) bool {
	if len(cfg.Types) == 0 {
		return true
	}
	return slices.Contains(cfg.Types, t)
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// timePtr returns a pointer to t, or nil when t is the zero time.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
