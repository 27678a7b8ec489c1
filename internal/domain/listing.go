// Package domain contains the core business entities and rules for the hotel search system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxAmenities is the maximum number of amenity labels carried by a listing.
const MaxAmenities = 4

// MaxRating is the upper bound of the listing rating scale.
const MaxRating = 5.0

// ListingID identifies a listing within one result set.
// Upstream identifiers may be numbers or strings; both decode into a ListingID.
type ListingID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *ListingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ListingID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("listing id must be a string or number: %w", err)
	}
	*id = ListingID(n.String())
	return nil
}

// String returns the identifier as a plain string.
func (id ListingID) String() string {
	return string(id)
}

// Category is the accommodation type of a listing.
type Category string

// Available categories.
const (
	CategoryHotel     Category = "hotel"
	CategoryApartment Category = "apartment"
	CategoryResort    Category = "resort"
	CategoryVilla     Category = "villa"
)

// CategoryAll is the filter sentinel that disables category filtering.
// It is never a listing's category.
const CategoryAll Category = "all"

// IsValid checks if the category is one of the fixed listing categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHotel, CategoryApartment, CategoryResort, CategoryVilla:
		return true
	default:
		return false
	}
}

// Categories returns the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{CategoryHotel, CategoryApartment, CategoryResort, CategoryVilla}
}

// Listing is the uniform, display-ready representation of a single accommodation.
// Listings are built once per search and treated as immutable afterwards.
type Listing struct {
	// ID is unique within one result set; favorites match on it
	ID ListingID `json:"id"`

	// Name is the display name (never empty)
	Name string `json:"name"`

	// Location is free-form location text (city or address)
	Location string `json:"location"`

	// Price is the nightly base price, without currency
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code (e.g., "EUR")
	Currency string `json:"currency"`

	// Rating is on a 0-5 scale with one decimal
	Rating float64 `json:"rating"`

	// ReviewCount is the number of guest reviews
	ReviewCount int `json:"reviewCount"`

	// Image is the URL of the main photo
	Image string `json:"image"`

	// Amenities holds at most MaxAmenities labels
	Amenities []string `json:"amenities"`

	// Category is one of hotel, apartment, resort, villa
	Category Category `json:"type"`

	// Distance from the centre in kilometers, one decimal (e.g., "1.2")
	Distance string `json:"distance"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// DistanceKm parses Distance as a number.
// The second return value is false when the distance is not numeric.
func (l Listing) DistanceKm() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(l.Distance), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks the listing invariants: rating range, amenity count and category.
func (l Listing) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: listing id is required", ErrInvalidListing)
	}
	if l.Rating < 0 || l.Rating > MaxRating {
		return fmt.Errorf("%w: rating %.1f out of range [0, 5]", ErrInvalidListing, l.Rating)
	}
	if len(l.Amenities) > MaxAmenities {
		return fmt.Errorf("%w: %d amenities exceed the limit of %d", ErrInvalidListing, len(l.Amenities), MaxAmenities)
	}
	if !l.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidListing, l.Category)
	}
	if l.ReviewCount < 0 {
		return fmt.Errorf("%w: review count must not be negative", ErrInvalidListing)
	}
	return nil
}
