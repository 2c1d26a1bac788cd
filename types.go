package sitesearch

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ContentType discriminates which kind of catalog entity a SearchResult
// represents. Consumers must switch on this field rather than inspecting
// optional fields.
type ContentType string

const (
	// ContentProduct identifies a catalog product.
	ContentProduct ContentType = "product"
	// ContentArticle identifies an editorial article.
	ContentArticle ContentType = "article"
	// ContentNews identifies a news item.
	ContentNews ContentType = "news"
	// ContentRating identifies a rating/review entry.
	ContentRating ContentType = "rating"
)

// SuggestionType discriminates the origin of an autocomplete suggestion.
type SuggestionType string

const (
	// SuggestionQuery is a suggestion drawn from past search history.
	SuggestionQuery SuggestionType = "query"
	// SuggestionProduct is a suggestion drawn from a product name.
	SuggestionProduct SuggestionType = "product"
	// SuggestionBrand is a suggestion drawn from a distinct brand name.
	SuggestionBrand SuggestionType = "brand"
	// SuggestionCategory is a suggestion drawn from a distinct category.
	SuggestionCategory SuggestionType = "category"
)

// Storage is the key-value persistence capability the history store is
// constructed with. Implementations live under kv/ and must not interpret
// the stored values.
type Storage interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// ErrorCode represents specific error codes for search and storage operations.
type ErrorCode int

const (
	// ErrCodeInvalidOption is returned when an invalid option is provided.
	ErrCodeInvalidOption ErrorCode = iota + 1000

	// ErrCodeCanceled is returned when a search operation is canceled.
	ErrCodeCanceled

	// ErrCodeKeyNotFound is returned when a storage key does not exist.
	ErrCodeKeyNotFound

	// ErrCodeStorageUnavailable is returned when the storage backend is unavailable.
	ErrCodeStorageUnavailable
)

// String returns the human-readable string representation of the error code.
// This implements the fmt.Stringer interface.
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeInvalidOption:
		return "invalid option"
	case ErrCodeCanceled:
		return "operation canceled"
	case ErrCodeKeyNotFound:
		return "key not found"
	case ErrCodeStorageUnavailable:
		return "storage unavailable"
	default:
		return "unknown error"
	}
}

// newErrorWithCode creates a new error with a code and message.
func newErrorWithCode(code ErrorCode, msg string) error {
	err := errors.New(msg)
	return errors.WithSecondaryError(err, errors.Newf("code: %d", int(code)))
}

// Common errors that can be returned by search and storage operations.
var (
	// ErrInvalidOption is returned when an invalid option is provided.
	ErrInvalidOption = newErrorWithCode(ErrCodeInvalidOption, "sitesearch: invalid option")

	// ErrCanceled is returned when a search operation is canceled.
	ErrCanceled = newErrorWithCode(ErrCodeCanceled, "sitesearch: operation canceled")

	// ErrKeyNotFound is returned by Storage implementations when a key does not exist.
	ErrKeyNotFound = newErrorWithCode(ErrCodeKeyNotFound, "sitesearch: key not found")

	// ErrStorageUnavailable is returned when the storage backend cannot be reached.
	ErrStorageUnavailable = newErrorWithCode(ErrCodeStorageUnavailable, "sitesearch: storage unavailable")
)
