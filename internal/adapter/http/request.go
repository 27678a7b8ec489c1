package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/travelink/hotel-search/internal/domain"
)

// SearchHotelsRequest represents the request body for a hotel search.
type SearchHotelsRequest struct {
	// Destination is the free-text city or place name (e.g., "Paris")
	Destination string `json:"destination" example:"Paris"`

	// CheckIn is the arrival date in YYYY-MM-DD format (optional, defaults to 7 days ahead)
	CheckIn string `json:"checkIn,omitempty" example:"2026-06-10"`

	// CheckOut is the departure date in YYYY-MM-DD format (optional, defaults to two nights after checkIn)
	CheckOut string `json:"checkOut,omitempty" example:"2026-06-12"`

	// Adults is the number of guests (1-30, defaults to 2)
	Adults int `json:"adults,omitempty" example:"2"`

	// Rooms is the number of rooms (1-30, defaults to 1)
	Rooms int `json:"rooms,omitempty" example:"1"`
}

// DisplayRequest represents the request body for changing the display selection.
// Empty fields select all categories, no price band and upstream order.
type DisplayRequest struct {
	// Category is one of all, hotel, apartment, resort, villa
	Category string `json:"category,omitempty" example:"apartment"`

	// PriceRange is "min-max", "min-" or "min"
	PriceRange string `json:"priceRange,omitempty" example:"0-100"`

	// Sort is one of price-asc, price-desc, rating, distance
	Sort string `json:"sort,omitempty" example:"price-asc"`

	band *domain.PriceBand
}

// ThemeRequest represents the request body for setting the theme.
type ThemeRequest struct {
	// Theme is light or dark
	Theme string `json:"theme" example:"dark"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks dates and guest counts. The destination is checked by
// the session so that an empty one gets its own warning response.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	checkIn, okIn := validateDate(errs, "checkIn", r.CheckIn)
	checkOut, okOut := validateDate(errs, "checkOut", r.CheckOut)
	if okIn && okOut && !checkOut.After(checkIn) {
		errs.Add("checkOut", "checkOut must be after checkIn")
	}

	validateCount(errs, "adults", r.Adults, domain.MaxAdults)
	validateCount(errs, "rooms", r.Rooms, domain.MaxRooms)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDate reports whether value is a set, well-formed date.
func validateDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	t, err := domain.ParseDate(field, value)
	if err != nil {
		var fieldErr *domain.FieldError
		if errors.As(err, &fieldErr) {
			errs.Add(fieldErr.Field, fieldErr.Message)
		} else {
			errs.Add(field, err.Error())
		}
		return time.Time{}, false
	}
	return t, !t.IsZero()
}

// validateCount accepts 0 (use the default) or 1..max.
func validateCount(errs *ValidationErrors, field string, value, max int) {
	if value < 0 {
		errs.Add(field, field+" must be at least 1")
		return
	}
	if value > max {
		errs.Add(field, fmt.Sprintf("%s cannot exceed %d", field, max))
	}
}

// Validate checks the display parameters and normalizes their case.
func (r *DisplayRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if r.Category != "" {
		c := domain.Category(r.Category)
		if c != domain.CategoryAll && !c.IsValid() {
			errs.Add("category", "category must be one of: all, hotel, apartment, resort, villa")
		}
	}

	r.band = nil
	if strings.TrimSpace(r.PriceRange) != "" {
		band, err := domain.ParsePriceBand(r.PriceRange)
		if err != nil {
			errs.Add("priceRange", "priceRange must be min-max with 0 <= min <= max")
		} else {
			r.band = band
		}
	}

	r.Sort = strings.ToLower(strings.TrimSpace(r.Sort))
	if !domain.SortKey(r.Sort).IsValid() {
		errs.Add("sort", "sort must be one of: price-asc, price-desc, rating, distance")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the theme value.
func (r *ThemeRequest) Validate() error {
	if _, err := domain.ParseTheme(r.Theme); err != nil {
		errs := &ValidationErrors{}
		errs.Add("theme", "theme must be one of: light, dark")
		return errs
	}
	return nil
}
