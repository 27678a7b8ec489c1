package http

import (
	"strings"

	"github.com/travelink/hotel-search/internal/domain"
)

// favoriteFunc reports whether a listing is a favorite.
type favoriteFunc func(domain.ListingID) bool

// ToDomainQuery converts a SearchHotelsRequest to domain.SearchQuery.
// Zero guest counts are left for SearchQuery.SetDefaults.
func ToDomainQuery(req *SearchHotelsRequest) domain.SearchQuery {
	return domain.SearchQuery{
		Destination: strings.TrimSpace(req.Destination),
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Adults:      req.Adults,
		Rooms:       req.Rooms,
	}
}

// ToDisplayState converts a validated DisplayRequest to domain.DisplayState.
func ToDisplayState(req *DisplayRequest) domain.DisplayState {
	category := domain.Category(req.Category)
	if category == "" {
		category = domain.CategoryAll
	}
	return domain.DisplayState{
		Category:  category,
		PriceBand: req.band,
		SortKey:   domain.SortKey(req.Sort),
	}
}

// ToHotelDTO converts a domain Listing to a HotelDTO.
func ToHotelDTO(l domain.Listing, favorite bool) HotelDTO {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return HotelDTO{
		ID:       l.ID.String(),
		Name:     l.Name,
		Location: l.Location,
		Price: PriceDTO{
			Amount:   l.Price,
			Currency: l.Currency,
		},
		Rating:      l.Rating,
		ReviewCount: l.ReviewCount,
		Image:       l.Image,
		Amenities:   amenities,
		Type:        string(l.Category),
		DistanceKm:  l.Distance,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Favorite:    favorite,
	}
}

// ToHotelDTOs converts listings, flagging favorites.
func ToHotelDTOs(listings []domain.Listing, isFavorite favoriteFunc) []HotelDTO {
	dtos := make([]HotelDTO, len(listings))
	for i, l := range listings {
		dtos[i] = ToHotelDTO(l, isFavorite(l.ID))
	}
	return dtos
}

// ToSearchResponseDTO converts a domain SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(result domain.SearchResult, isFavorite favoriteFunc) *SearchResponseDTO {
	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Destination: result.Query.Destination,
			CheckIn:     result.Query.CheckIn,
			CheckOut:    result.Query.CheckOut,
			Adults:      result.Query.Adults,
			Rooms:       result.Query.Rooms,
		},
		Metadata: MetadataDTO{
			TotalResults:   len(result.Listings),
			Source:         string(result.Source),
			FallbackReason: string(result.FallbackReason),
			CacheHit:       result.CacheHit,
			SearchTimeMs:   result.Duration.Milliseconds(),
			Generation:     result.Generation,
			Stale:          result.Stale,
		},
		Hotels: ToHotelDTOs(result.Listings, isFavorite),
	}
}

// ToDisplayResponseDTO converts a domain DisplayView to a DisplayResponseDTO.
func ToDisplayResponseDTO(view domain.DisplayView, isFavorite favoriteFunc) *DisplayResponseDTO {
	filters := FiltersDTO{
		Category: string(view.State.Category),
		Sort:     string(view.State.SortKey),
	}
	if filters.Category == "" {
		filters.Category = string(domain.CategoryAll)
	}
	if view.State.PriceBand != nil {
		filters.PriceRange = view.State.PriceBand.String()
	}

	return &DisplayResponseDTO{
		Filters: filters,
		Count:   view.Count,
		Total:   view.Total,
		Hotels:  ToHotelDTOs(view.Listings, isFavorite),
	}
}

// ToFavoritesResponseDTO builds the favorites listing.
func ToFavoritesResponseDTO(ids []domain.ListingID, present []domain.Listing) *FavoritesResponseDTO {
	return &FavoritesResponseDTO{
		IDs:    idStrings(ids),
		Count:  len(ids),
		Hotels: ToHotelDTOs(present, func(domain.ListingID) bool { return true }),
	}
}

// ToToggleResponseDTO converts a domain ToggleResult.
func ToToggleResponseDTO(result domain.ToggleResult) *ToggleResponseDTO {
	return &ToggleResponseDTO{
		ID:       result.ID.String(),
		Favorite: result.Favorite,
		Notification: NotificationDTO{
			Type:    string(result.Notification.Type),
			Message: result.Notification.Message,
		},
		Favorites: idStrings(result.Favorites),
	}
}

// ToDestinationsResponseDTO converts the popular destinations.
func ToDestinationsResponseDTO(destinations []domain.PopularDestination) *DestinationsResponseDTO {
	dtos := make([]DestinationDTO, len(destinations))
	for i, d := range destinations {
		dtos[i] = DestinationDTO{
			Name:       d.Name,
			Country:    d.Country,
			Image:      d.Image,
			HotelCount: d.HotelCount,
		}
	}
	return &DestinationsResponseDTO{Destinations: dtos}
}

func idStrings(ids []domain.ListingID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}
