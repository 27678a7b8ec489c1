package domain

import "time"

// ResultSource tells whether a result set came from the live upstream or the fallback catalog.
type ResultSource string

// Result sources.
const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

// FallbackReason records why a search degraded to the fallback catalog.
type FallbackReason string

// Fallback reasons.
const (
	ReasonNone             FallbackReason = ""
	ReasonResolutionFailed FallbackReason = "resolution_failed"
	ReasonFetchFailed      FallbackReason = "fetch_failed"
	ReasonEmptyResults     FallbackReason = "empty_results"
)

// SearchResult is the outcome of one search invocation.
// A search always produces listings: either live results or the fallback catalog.
type SearchResult struct {
	// Query is the query as sent upstream (defaults and stay dates applied)
	Query SearchQuery `json:"query"`

	// Listings is the full result set, never nil
	Listings []Listing `json:"listings"`

	// Source is live or fallback
	Source ResultSource `json:"source"`

	// FallbackReason is set when Source is fallback
	FallbackReason FallbackReason `json:"fallbackReason,omitempty"`

	// CacheHit indicates whether the live results came from cache
	CacheHit bool `json:"cacheHit"`

	// Generation orders searches by the time they were triggered
	Generation uint64 `json:"generation"`

	// Stale is set when a newer search had already been committed
	Stale bool `json:"stale"`

	// Duration is how long the search took
	Duration time.Duration `json:"-"`
}

// NewLiveResult creates a result carrying upstream listings.
func NewLiveResult(query SearchQuery, listings []Listing) SearchResult {
	if listings == nil {
		listings = []Listing{}
	}
	return SearchResult{
		Query:    query,
		Listings: listings,
		Source:   SourceLive,
	}
}

// NewFallbackResult creates a degraded result carrying fallback listings.
func NewFallbackResult(query SearchQuery, listings []Listing, reason FallbackReason) SearchResult {
	if listings == nil {
		listings = []Listing{}
	}
	return SearchResult{
		Query:          query,
		Listings:       listings,
		Source:         SourceFallback,
		FallbackReason: reason,
	}
}

// IsFallback returns true if the result came from the fallback catalog.
func (r *SearchResult) IsFallback() bool {
	return r.Source == SourceFallback
}
