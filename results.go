package sitesearch

import "time"

// SearchResult represents a single ranked hit across any content type.
type SearchResult struct {
	// ID is the identifier of the source content item.
	ID string `json:"id"`

	// Title is the display title of the hit.
	Title string `json:"title"`

	// Excerpt is a short summary taken from the source item.
	Excerpt string `json:"excerpt"`

	// Type discriminates which content kind this hit represents.
	Type ContentType `json:"type"`

	// URL is the canonical location of the source item.
	URL string `json:"url"`

	// Category is the source item's category identifier.
	Category string `json:"category"`

	// Tags carries the source item's tags.
	Tags []string `json:"tags,omitempty"`

	// RelevanceScore is the aggregate match strength. Always >= 0; zero
	// scores are filtered out before results are returned.
	RelevanceScore float64 `json:"relevanceScore"`

	// HighlightedText is Excerpt with matched query words wrapped in
	// <mark> markers.
	HighlightedText string `json:"highlightedText"`

	// Image is an optional image URL (products).
	Image string `json:"image,omitempty"`

	// Price is an optional price (products).
	Price float64 `json:"price,omitempty"`

	// Rating is an optional rating value (products and rating entries).
	Rating float64 `json:"rating,omitempty"`

	// PublishedAt is an optional publication time (articles, news, ratings).
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Results represents a collection of search results with metadata.
type Results struct {
	// Items contains the individual search results, sorted by
	// RelevanceScore descending.
	Items []SearchResult `json:"items"`

	// Total is the total number of matching items before pagination.
	Total int64 `json:"total"`

	// Took is the time taken to execute the search in milliseconds.
	Took int64 `json:"took_ms"`

	// MaxScore is the maximum relevance score across returned results.
	MaxScore float64 `json:"max_score"`

	// Query is the original query string for reference.
	Query string `json:"query"`

	// NextOffset can be used for pagination.
	NextOffset *int `json:"next_offset,omitempty"`
}

// Suggestion represents a single autocomplete candidate.
type Suggestion struct {
	// ID identifies the suggestion; derived from its source.
	ID string `json:"id"`

	// Text is the suggestion text shown to the user. Within one generated
	// list, Text values are unique under case-insensitive comparison.
	Text string `json:"text"`

	// Type discriminates the suggestion's origin.
	Type SuggestionType `json:"type"`

	// Category is set for product suggestions.
	Category string `json:"category,omitempty"`

	// Count carries the result count of the past search for query
	// suggestions.
	Count int `json:"count,omitempty"`
}

// HistoryEntry represents one completed past search.
type HistoryEntry struct {
	// ID is a generated unique identifier.
	ID string `json:"id"`

	// Query is the trimmed query string the user searched for.
	Query string `json:"query"`

	// Timestamp is the time the search completed.
	Timestamp time.Time `json:"timestamp"`

	// ResultsCount is the number of results the search produced.
	ResultsCount int `json:"resultsCount"`

	// ClickedResults lists ids of results clicked after this search.
	ClickedResults []string `json:"clickedResults,omitempty"`
}
