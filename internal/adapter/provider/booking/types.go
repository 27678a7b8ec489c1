package booking

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number, a numeric string or null.
// Valid is false when the field was absent, null or not numeric.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Non-numeric values are treated as missing.
		return nil
	}
	f.Value, f.Valid = v, true
	return nil
}

// Positive returns the value when it is present and greater than zero.
func (f FlexFloat) Positive() (float64, bool) {
	if f.Valid && f.Value > 0 {
		return f.Value, true
	}
	return 0, false
}

// Ptr returns a pointer to the value, or nil when absent.
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexString decodes a JSON string, number or boolean as text.
// Null, objects and arrays are treated as missing.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case 't', 'f':
		if b, err := strconv.ParseBool(string(data)); err == nil {
			*f = FlexString(strconv.FormatBool(b))
		}
	case 'n', '{', '[':
	default:
		var n json.Number
		if json.Unmarshal(data, &n) == nil {
			*f = FlexString(n.String())
		}
	}
	return nil
}

// String returns the decoded text.
func (f FlexString) String() string {
	return string(f)
}

// FlexBool decodes true/false, 0/1 and their string forms.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		*b = true
	default:
		*b = false
	}
	return nil
}

// Facilities decodes either a JSON array of labels or a comma-separated string.
// Entries that are not strings are skipped.
type Facilities []string

func (f *Facilities) UnmarshalJSON(data []byte) error {
	*f = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				*f = append(*f, part)
			}
		}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	for _, item := range items {
		var label string
		if json.Unmarshal(item, &label) != nil {
			continue
		}
		if label = strings.TrimSpace(label); label != "" {
			*f = append(*f, label)
		}
	}
	return nil
}

// RawHotel is one record of the searchHotels response as sent by the API.
type RawHotel struct {
	HotelID      json.RawMessage `json:"hotel_id"`
	HotelName    FlexString      `json:"hotel_name"`
	PropertyName FlexString      `json:"property_name"`
	City         FlexString      `json:"city"`
	Address      FlexString      `json:"address"`

	MinTotalPrice           FlexFloat               `json:"min_total_price"`
	CompositePriceBreakdown CompositePriceBreakdown `json:"composite_price_breakdown"`
	CurrencyCode            FlexString              `json:"currency_code"`

	ReviewScore FlexFloat `json:"review_score"`
	ReviewNr    FlexFloat `json:"review_nr"`

	Max1440PhotoURL FlexString `json:"max_1440_photo_url"`
	MainPhotoURL    FlexString `json:"main_photo_url"`

	IsFreeCancellable     FlexBool   `json:"is_free_cancellable"`
	HasSwimmingPool       FlexBool   `json:"has_swimming_pool"`
	HotelFacilities       Facilities `json:"hotel_facilities"`
	AccommodationTypeName FlexString `json:"accommodation_type_name"`

	Distance  FlexFloat `json:"distance"`
	Latitude  FlexFloat `json:"latitude"`
	Longitude FlexFloat `json:"longitude"`
}

type CompositePriceBreakdown struct {
	GrossAmountPerNight struct {
		Value    FlexFloat  `json:"value"`
		Currency FlexString `json:"currency"`
	} `json:"gross_amount_per_night"`
}

// Destination is one candidate of the searchDestination response.
type Destination struct {
	DestID     json.RawMessage `json:"dest_id"`
	Name       FlexString      `json:"name"`
	SearchType FlexString      `json:"search_type"`
	CityName   FlexString      `json:"city_name"`
	Country    FlexString      `json:"country"`
}

type destinationResponse struct {
	Status bool          `json:"status"`
	Data   []Destination `json:"data"`
}

type hotelsResponse struct {
	Status bool `json:"status"`
	Data   *struct {
		Hotels []json.RawMessage `json:"hotels"`
	} `json:"data"`
}

// HotelsPage is the decoded result of one searchHotels call.
// Malformed counts records that could not be decoded and are not in Hotels.
type HotelsPage struct {
	Hotels    []RawHotel
	Malformed int
}

// rawID renders a JSON string or number as a plain string.
// Empty, null and non-scalar values yield "".
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return ""
	}
	return n.String()
}
