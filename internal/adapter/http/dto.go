package http

// SearchResponseDTO is the data transfer object for search responses.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Hotels         []HotelDTO        `json:"hotels"`
}

// SearchCriteriaDTO is the query as sent upstream, with defaults and stay dates applied.
type SearchCriteriaDTO struct {
	Destination string `json:"destination" example:"Paris"`
	CheckIn     string `json:"check_in" example:"2026-06-10"`
	CheckOut    string `json:"check_out" example:"2026-06-12"`
	Adults      int    `json:"adults" example:"2"`
	Rooms       int    `json:"rooms" example:"1"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults int `json:"total_results" example:"8"`

	// Source is live or fallback
	Source string `json:"source" example:"live"`

	// FallbackReason is resolution_failed, fetch_failed or empty_results
	FallbackReason string `json:"fallback_reason,omitempty" example:""`

	CacheHit     bool  `json:"cache_hit"`
	SearchTimeMs int64 `json:"search_time_ms" example:"840"`

	// Generation orders searches by trigger time
	Generation uint64 `json:"generation" example:"3"`

	// Stale is true when a newer search was committed first
	Stale bool `json:"stale"`
}

// HotelDTO is the data transfer object for a listing.
type HotelDTO struct {
	ID          string   `json:"id" example:"12345"`
	Name        string   `json:"name" example:"Grand Hôtel Paris"`
	Location    string   `json:"location" example:"Centre-ville, Paris"`
	Price       PriceDTO `json:"price"`
	Rating      float64  `json:"rating" example:"4.5"`
	ReviewCount int      `json:"review_count" example:"856"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Type        string   `json:"type" example:"hotel"`
	DistanceKm  string   `json:"distance_km" example:"0.5"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Favorite    bool     `json:"favorite"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount" example:"120"`
	Currency string  `json:"currency" example:"EUR"`
}

// DisplayResponseDTO is the filtered and sorted view of the current result set.
type DisplayResponseDTO struct {
	Filters FiltersDTO `json:"filters"`

	// Count is the number of displayed hotels
	Count int `json:"count" example:"2"`

	// Total is the size of the full result set
	Total  int        `json:"total" example:"8"`
	Hotels []HotelDTO `json:"hotels"`
}

// FiltersDTO echoes the display state the view was derived with.
type FiltersDTO struct {
	Category   string `json:"category" example:"apartment"`
	PriceRange string `json:"price_range,omitempty" example:"0-100"`
	Sort       string `json:"sort,omitempty" example:"price-asc"`
}

// FavoritesResponseDTO lists the favorites.
type FavoritesResponseDTO struct {
	// IDs are all favorite ids in insertion order
	IDs   []string `json:"ids"`
	Count int      `json:"count" example:"2"`

	// Hotels are the favorites present in the current result set
	Hotels []HotelDTO `json:"hotels"`
}

// ToggleResponseDTO is the outcome of a favorite toggle.
type ToggleResponseDTO struct {
	ID           string          `json:"id" example:"3"`
	Favorite     bool            `json:"favorite"`
	Notification NotificationDTO `json:"notification"`
	Favorites    []string        `json:"favorites"`
}

// NotificationDTO is a transient message for the user.
type NotificationDTO struct {
	Type    string `json:"type" example:"success"`
	Message string `json:"message" example:"Ajouté aux favoris"`
}

// ThemeResponseDTO carries the current theme.
type ThemeResponseDTO struct {
	Theme string `json:"theme" example:"light"`
}

// DestinationsResponseDTO lists the popular destinations.
type DestinationsResponseDTO struct {
	Destinations []DestinationDTO `json:"destinations"`
}

// DestinationDTO is a suggested destination.
type DestinationDTO struct {
	Name       string `json:"name" example:"Paris"`
	Country    string `json:"country" example:"France"`
	Image      string `json:"image"`
	HotelCount int    `json:"hotel_count" example:"5234"`
}
