package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used by the upstream API.
const DateLayout = "2006-01-02"

// Occupancy defaults and limits.
const (
	DefaultAdults = 2
	DefaultRooms  = 1
	MaxAdults     = 30
	MaxRooms      = 30
)

// Stay date defaults: check-in a week ahead, two nights.
const (
	DefaultLeadDays   = 7
	DefaultStayNights = 2
)

// SearchQuery defines the parameters of a hotel search.
type SearchQuery struct {
	// Destination is free-text destination input (e.g., "Paris")
	Destination string `json:"destination"`

	// CheckIn is the optional arrival date in YYYY-MM-DD format
	CheckIn string `json:"checkIn,omitempty"`

	// CheckOut is the optional departure date in YYYY-MM-DD format
	CheckOut string `json:"checkOut,omitempty"`

	// Adults is the number of adult guests (default: 2)
	Adults int `json:"adults"`

	// Rooms is the number of rooms (default: 1)
	Rooms int `json:"rooms"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SetDefaults trims the destination and applies default occupancy.
func (q *SearchQuery) SetDefaults() {
	q.Destination = strings.TrimSpace(q.Destination)
	q.CheckIn = strings.TrimSpace(q.CheckIn)
	q.CheckOut = strings.TrimSpace(q.CheckOut)
	if q.Adults == 0 {
		q.Adults = DefaultAdults
	}
	if q.Rooms == 0 {
		q.Rooms = DefaultRooms
	}
}

// Validate checks if the search query is valid.
// An empty destination returns ErrEmptyDestination; other failures wrap ErrInvalidRequest.
func (q *SearchQuery) Validate() error {
	if strings.TrimSpace(q.Destination) == "" {
		return ErrEmptyDestination
	}

	checkIn, err := ParseDate("checkIn", q.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := ParseDate("checkOut", q.CheckOut)
	if err != nil {
		return err
	}
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRequest)
	}

	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Adults > MaxAdults {
		return fmt.Errorf("%w: adults cannot exceed %d", ErrInvalidRequest, MaxAdults)
	}
	if q.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalidRequest)
	}
	if q.Rooms > MaxRooms {
		return fmt.Errorf("%w: rooms cannot exceed %d", ErrInvalidRequest, MaxRooms)
	}

	return nil
}

// WithStayDates returns a copy of the query with missing dates filled in.
// With no dates the stay starts DefaultLeadDays after now (UTC). A single
// given date is paired with the other end of a DefaultStayNights stay.
// Dates that do not parse are left for Validate to reject.
func (q SearchQuery) WithStayDates(now time.Time) SearchQuery {
	checkIn, errIn := ParseDate("checkIn", q.CheckIn)
	checkOut, errOut := ParseDate("checkOut", q.CheckOut)
	if errIn != nil || errOut != nil {
		return q
	}

	switch {
	case checkIn.IsZero() && checkOut.IsZero():
		checkIn = now.UTC().AddDate(0, 0, DefaultLeadDays)
		checkOut = checkIn.AddDate(0, 0, DefaultStayNights)
	case checkOut.IsZero():
		checkOut = checkIn.AddDate(0, 0, DefaultStayNights)
	case checkIn.IsZero():
		checkIn = checkOut.AddDate(0, 0, -DefaultStayNights)
	}

	q.CheckIn = checkIn.Format(DateLayout)
	q.CheckOut = checkOut.Format(DateLayout)
	return q
}

// CacheKey returns a normalized key identifying equivalent queries.
func (q SearchQuery) CacheKey() string {
	return fmt.Sprintf("%s|%s|%s|%d|%d",
		strings.ToLower(strings.TrimSpace(q.Destination)), q.CheckIn, q.CheckOut, q.Adults, q.Rooms)
}

// ParseDate parses an optional YYYY-MM-DD date named field. An empty value
// yields the zero time. Failures are *FieldError values wrapping
// ErrInvalidRequest.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, &FieldError{Field: field, Message: fmt.Sprintf("%s must be in YYYY-MM-DD format, got %q", field, value)}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Message: fmt.Sprintf("%s is not a valid date: %s", field, value)}
	}
	return t, nil
}
