package booking

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/randutil"
)

// ProviderName is the unique identifier for the Booking.com provider.
const ProviderName = "booking_com"

const (
	defaultName     = "Hôtel"
	defaultCurrency = "EUR"

	// imageFallbackURL is completed with the escaped location.
	imageFallbackURL = "https://source.unsplash.com/800x600/?hotel,"

	maxFacilities = 3
)

const (
	minFillerPrice   = 50
	maxFillerPrice   = 250
	minFillerRating  = 3.0
	maxFillerRating  = 5.0
	minFillerReviews = 100
	maxFillerReviews = 1100
	maxFillerDist    = 5.0
)

// Labels derived from boolean flags of the raw record.
const (
	AmenityFreeCancellation = "Annulation gratuite"
	AmenityPool             = "Piscine"
)

func defaultAmenities() []string {
	return []string{"WiFi", "Climatisation", "Petit-déjeuner"}
}

// normalizer converts raw hotel records to domain listings. Missing
// price, rating, review count and distance are filled from rnd, so two
// runs over the same record may differ.
type normalizer struct {
	rnd   randutil.Source
	newID func() string
}

func newNormalizer(rnd randutil.Source) *normalizer {
	if rnd == nil {
		rnd = randutil.NewSource()
	}
	return &normalizer{rnd: rnd, newID: uuid.NewString}
}

// normalize converts every record, skipping those that still fail
// validation. It returns the number of skipped records.
func (n *normalizer) normalize(hotels []RawHotel) ([]domain.Listing, int) {
	result := make([]domain.Listing, 0, len(hotels))
	skipped := 0

	for _, h := range hotels {
		listing := n.normalizeHotel(h)
		if err := listing.Validate(); err != nil {
			skipped++
			continue
		}
		result = append(result, listing)
	}

	return result, skipped
}

func (n *normalizer) normalizeHotel(h RawHotel) domain.Listing {
	name := firstNonEmpty(h.HotelName.String(), h.PropertyName.String(), defaultName)
	location := firstNonEmpty(h.City.String(), h.Address.String())

	id := rawID(h.HotelID)
	if id == "" {
		id = n.newID()
	}

	return domain.Listing{
		ID:          domain.ListingID(id),
		Name:        name,
		Location:    location,
		Price:       n.price(h),
		Currency:    firstNonEmpty(strings.TrimSpace(h.CurrencyCode.String()), defaultCurrency),
		Rating:      n.rating(h),
		ReviewCount: n.reviewCount(h),
		Image:       firstNonEmpty(h.Max1440PhotoURL.String(), h.MainPhotoURL.String(), imageFallbackURL+url.QueryEscape(location)),
		Amenities:   extractAmenities(h),
		Category:    determineCategory(name, h.AccommodationTypeName.String()),
		Distance:    n.distance(h),
		Latitude:    h.Latitude.Ptr(),
		Longitude:   h.Longitude.Ptr(),
	}
}

func (n *normalizer) price(h RawHotel) float64 {
	if v, ok := h.MinTotalPrice.Positive(); ok {
		return v
	}
	if v, ok := h.CompositePriceBreakdown.GrossAmountPerNight.Value.Positive(); ok {
		return v
	}
	return float64(randutil.IntRange(n.rnd, minFillerPrice, maxFillerPrice))
}

// rating converts the 0-10 review score to the 0-5 scale.
func (n *normalizer) rating(h RawHotel) float64 {
	if score, ok := h.ReviewScore.Positive(); ok {
		rating := randutil.Round1(score / 2)
		if rating > domain.MaxRating {
			rating = domain.MaxRating
		}
		return rating
	}
	return randutil.Round1(randutil.Uniform(n.rnd, minFillerRating, maxFillerRating))
}

func (n *normalizer) reviewCount(h RawHotel) int {
	if v, ok := h.ReviewNr.Positive(); ok {
		return int(v)
	}
	return randutil.IntRange(n.rnd, minFillerReviews, maxFillerReviews)
}

func (n *normalizer) distance(h RawHotel) string {
	v, ok := h.Distance.Positive()
	if !ok {
		v = randutil.Uniform(n.rnd, 0, maxFillerDist)
	}
	return strconv.FormatFloat(randutil.Round1(v), 'f', 1, 64)
}

func extractAmenities(h RawHotel) []string {
	amenities := make([]string, 0, domain.MaxAmenities)

	if h.IsFreeCancellable {
		amenities = append(amenities, AmenityFreeCancellation)
	}
	if h.HasSwimmingPool {
		amenities = append(amenities, AmenityPool)
	}

	facilities := h.HotelFacilities
	if len(facilities) > maxFacilities {
		facilities = facilities[:maxFacilities]
	}
	amenities = append(amenities, facilities...)

	if len(amenities) == 0 {
		return defaultAmenities()
	}
	if len(amenities) > domain.MaxAmenities {
		amenities = amenities[:domain.MaxAmenities]
	}
	return amenities
}

// determineCategory matches resort, apartment and villa, in that order,
// against the name and the accommodation type.
func determineCategory(name, accommodationType string) domain.Category {
	name = strings.ToLower(name)
	accommodationType = strings.ToLower(accommodationType)

	for _, c := range []domain.Category{domain.CategoryResort, domain.CategoryApartment, domain.CategoryVilla} {
		if strings.Contains(name, string(c)) || strings.Contains(accommodationType, string(c)) {
			return c
		}
	}
	return domain.CategoryHotel
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
