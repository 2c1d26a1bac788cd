// Package catalog implements the in-memory content snapshot the search and
// suggestion functions run against: products, articles, news items, and
// rating entries, each searched with the shared relevance scorer.
package catalog

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Product represents a catalog product record.
type Product struct {
	// ID is the unique identifier of the product.
	ID string `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Description is the long-form product description.
	Description string `json:"description"`
	// Brand is the product's brand name.
	Brand string `json:"brand"`
	// Category is the product's category identifier.
	Category string `json:"category"`
	// Tags carries free-form product tags.
	Tags []string `json:"tags,omitempty"`
	// URL is the canonical product page location.
	URL string `json:"url"`
	// Image is an optional product image URL.
	Image string `json:"image,omitempty"`
	// Price is the product price.
	Price float64 `json:"price,omitempty"`
	// Rating is the aggregate product rating.
	Rating float64 `json:"rating,omitempty"`
}

// Article represents an editorial article record.
type Article struct {
	// ID is the unique identifier of the article.
	ID string `json:"id"`
	// Title is the article headline.
	Title string `json:"title"`
	// Excerpt is the short article summary.
	Excerpt string `json:"excerpt"`
	// Body is the full article body.
	Body string `json:"body"`
	// Tags carries the article's tag names.
	Tags []string `json:"tags,omitempty"`
	// Category is the article's category name.
	Category string `json:"category"`
	// URL is the canonical article location.
	URL string `json:"url"`
	// PublishedAt is the publication time.
	PublishedAt time.Time `json:"publishedAt"`
}

// NewsItem represents a news record.
type NewsItem struct {
	// ID is the unique identifier of the news item.
	ID string `json:"id"`
	// Title is the news headline.
	Title string `json:"title"`
	// Excerpt is the short news summary.
	Excerpt string `json:"excerpt"`
	// Category is the news category identifier.
	Category string `json:"category"`
	// Tags carries the item's tags.
	Tags []string `json:"tags,omitempty"`
	// URL is the canonical news item location.
	URL string `json:"url"`
	// PublishedAt is the publication time.
	PublishedAt time.Time `json:"publishedAt"`
}

// Rating represents a rating/review entry.
type Rating struct {
	// ID is the unique identifier of the rating entry.
	ID string `json:"id"`
	// Title is the rating headline.
	Title string `json:"title"`
	// Excerpt is the short rating summary.
	Excerpt string `json:"excerpt"`
	// Category is the rating's category identifier.
	Category string `json:"category"`
	// Tags carries the entry's tags.
	Tags []string `json:"tags,omitempty"`
	// URL is the canonical rating location.
	URL string `json:"url"`
	// Score is the rating value given by the entry.
	Score float64 `json:"score,omitempty"`
	// PublishedAt is the publication time.
	PublishedAt time.Time `json:"publishedAt"`
}

// Snapshot is the serializable form of a full content snapshot, as loaded
// from a catalog JSON file.
type Snapshot struct {
	Products []Product  `json:"products,omitempty"`
	Articles []Article  `json:"articles,omitempty"`
	News     []NewsItem `json:"news,omitempty"`
	Ratings  []Rating   `json:"ratings,omitempty"`
}

// Catalog holds a read-mostly content snapshot. Search and suggestion
// methods only read the snapshot; mutation happens through the Add and Set
// methods, which are safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	tracer   trace.Tracer
	products []Product
	articles []Article
	news     []NewsItem
	ratings  []Rating
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		tracer: otel.Tracer("sitesearch-catalog"),
	}
}

// FromSnapshot creates a catalog pre-populated with the snapshot's content.
func FromSnapshot(s Snapshot) *Catalog {
	c := New()
	c.products = s.Products
	c.articles = s.Articles
	c.news = s.News
	c.ratings = s.Ratings
	return c
}

// AddProduct appends a product to the snapshot.
func (c *Catalog) AddProduct(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

// AddArticle appends an article to the snapshot.
func (c *Catalog) AddArticle(a Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = append(c.articles, a)
}

// AddNews appends a news item to the snapshot.
func (c *Catalog) AddNews(n NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.news = append(c.news, n)
}

// AddRating appends a rating entry to the snapshot.
func (c *Catalog) AddRating(r Rating) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ratings = append(c.ratings, r)
}

// Size returns the total number of content items across all types.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products) + len(c.articles) + len(c.news) + len(c.ratings)
}

// Clear removes all content from the catalog.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.articles = nil
	c.news = nil
	c.ratings = nil
}
