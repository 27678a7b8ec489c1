package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SortKey defines the available orderings of displayed listings.
type SortKey string

// Available sort keys.
const (
	// SortNone keeps the filtered order (which is the result set order)
	SortNone SortKey = ""

	// SortPriceAsc sorts by price ascending (cheapest first)
	SortPriceAsc SortKey = "price-asc"

	// SortPriceDesc sorts by price descending
	SortPriceDesc SortKey = "price-desc"

	// SortRating sorts by rating descending (best rated first)
	SortRating SortKey = "rating"

	// SortDistance sorts by distance ascending (closest first)
	SortDistance SortKey = "distance"
)

// IsValid checks if the sort key is a valid value.
func (s SortKey) IsValid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc, SortRating, SortDistance:
		return true
	default:
		return false
	}
}

// PriceBand is a closed or open-ended nightly price interval.
type PriceBand struct {
	// Min is the inclusive lower bound
	Min float64 `json:"min"`

	// Max is the inclusive upper bound; nil means open-ended
	Max *float64 `json:"max,omitempty"`
}

// Contains checks if a price falls within the band.
func (b *PriceBand) Contains(price float64) bool {
	if b == nil {
		return true
	}
	if price < b.Min {
		return false
	}
	if b.Max != nil && price > *b.Max {
		return false
	}
	return true
}

// IsValid returns false for negative bounds or min > max.
func (b *PriceBand) IsValid() bool {
	if b == nil {
		return true
	}
	if b.Min < 0 {
		return false
	}
	if b.Max != nil && (*b.Max < 0 || *b.Max < b.Min) {
		return false
	}
	return true
}

// String renders the band in the "min-max" form accepted by ParsePriceBand.
func (b *PriceBand) String() string {
	if b == nil {
		return ""
	}
	min := strconv.FormatFloat(b.Min, 'f', -1, 64)
	if b.Max == nil {
		return min + "-"
	}
	return min + "-" + strconv.FormatFloat(*b.Max, 'f', -1, 64)
}

// ParsePriceBand parses "min-max", "min-" or "min" into a PriceBand.
// An empty string yields a nil band (no price filtering).
// A missing or zero max is treated as open-ended.
func ParsePriceBand(s string) (*PriceBand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	minPart, maxPart, _ := strings.Cut(s, "-")
	min, err := strconv.ParseFloat(strings.TrimSpace(minPart), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price range %q", ErrInvalidRequest, s)
	}

	band := &PriceBand{Min: min}
	if maxPart = strings.TrimSpace(maxPart); maxPart != "" {
		max, err := strconv.ParseFloat(maxPart, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid price range %q", ErrInvalidRequest, s)
		}
		if max != 0 {
			band.Max = &max
		}
	}

	if !band.IsValid() {
		return nil, fmt.Errorf("%w: invalid price range %q", ErrInvalidRequest, s)
	}
	return band, nil
}

// DisplayState is the ephemeral filter/sort selection applied to the full result set.
type DisplayState struct {
	// Category filters listings by type; CategoryAll (or empty) disables it
	Category Category `json:"category"`

	// PriceBand filters listings by nightly price; nil disables it
	PriceBand *PriceBand `json:"priceBand,omitempty"`

	// SortKey orders the filtered listings; SortNone keeps result order
	SortKey SortKey `json:"sort"`
}

// DefaultDisplayState returns the state used after every new search.
func DefaultDisplayState() DisplayState {
	return DisplayState{Category: CategoryAll, SortKey: SortNone}
}

// Validate checks the category, price band and sort key.
func (s DisplayState) Validate() error {
	if s.Category != "" && s.Category != CategoryAll && !s.Category.IsValid() {
		return fmt.Errorf("%w: category must be one of: all, hotel, apartment, resort, villa; got %q", ErrInvalidRequest, s.Category)
	}
	if !s.PriceBand.IsValid() {
		return fmt.Errorf("%w: invalid price band", ErrInvalidRequest)
	}
	if !s.SortKey.IsValid() {
		return fmt.Errorf("%w: sort must be one of: price-asc, price-desc, rating, distance; got %q", ErrInvalidRequest, s.SortKey)
	}
	return nil
}

// MatchesListing checks if a listing passes the category and price filters.
func (s DisplayState) MatchesListing(l Listing) bool {
	if s.Category != "" && s.Category != CategoryAll && l.Category != s.Category {
		return false
	}
	return s.PriceBand.Contains(l.Price)
}

// DisplayView is the filtered and sorted subset handed to the rendering layer.
type DisplayView struct {
	// State is the display state the view was derived with
	State DisplayState `json:"state"`

	// Listings is the displayed subset, in display order
	Listings []Listing `json:"listings"`

	// Count is the number of displayed listings
	Count int `json:"count"`

	// Total is the size of the full result set
	Total int `json:"total"`
}
