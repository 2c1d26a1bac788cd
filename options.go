package sitesearch

// SearchOption represents a search configuration option.
type SearchOption interface {
	Apply(*SearchConfig)
}

// DefaultMaxSuggestions is the suggestion cap applied when no
// WithMaxSuggestions option is supplied.
const DefaultMaxSuggestions = 8

// SearchConfig holds all search configuration parameters.
type SearchConfig struct {
	// Limit specifies the maximum number of results to return.
	Limit int

	// Offset specifies the number of results to skip for pagination.
	Offset int

	// Types restricts a unified search to the given content types.
	// Empty means all types.
	Types []ContentType

	// MaxSuggestions caps the autocomplete suggestion list.
	MaxSuggestions int
}

// optionFunc is a function that implements SearchOption.
type optionFunc func(*SearchConfig)

// Apply implements the SearchOption interface for optionFunc.
func (f optionFunc) Apply(cfg *SearchConfig) {
	f(cfg)
}

// WithLimit sets the maximum number of results to return.
func WithLimit(n int) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.Limit = n
	})
}

// WithOffset sets the number of results to skip for pagination.
func WithOffset(n int) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.Offset = n
	})
}

// WithTypes restricts a unified search to the given content types.
func WithTypes(types ...ContentType) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.Types = append(cfg.Types, types...)
	})
}

// WithMaxSuggestions overrides the default autocomplete suggestion cap.
func WithMaxSuggestions(n int) SearchOption {
	return optionFunc(func(cfg *SearchConfig) {
		cfg.MaxSuggestions = n
	})
}
