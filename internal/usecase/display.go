package usecase

import (
	"sort"

	"github.com/travelink/hotel-search/internal/domain"
)

// ApplyDisplay derives the displayed subset from the full result set:
// category and price filters first (order preserving), then a stable sort.
// The input slice is never modified.
func ApplyDisplay(listings []domain.Listing, state domain.DisplayState) domain.DisplayView {
	if state.Category == "" {
		state.Category = domain.CategoryAll
	}

	filtered := filterListings(listings, state)
	sortListings(filtered, state.SortKey)

	return domain.DisplayView{
		State:    state,
		Listings: filtered,
		Count:    len(filtered),
		Total:    len(listings),
	}
}

func filterListings(listings []domain.Listing, state domain.DisplayState) []domain.Listing {
	result := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if state.MatchesListing(l) {
			result = append(result, l)
		}
	}
	return result
}

// sortListings sorts in place. Ties keep their relative order.
func sortListings(listings []domain.Listing, key domain.SortKey) {
	if len(listings) <= 1 {
		return
	}

	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Rating > listings[j].Rating
		})
	case domain.SortDistance:
		sort.SliceStable(listings, func(i, j int) bool {
			return distanceLess(listings[i], listings[j])
		})
	}
}

// distanceLess orders by numeric distance; non-numeric distances go last.
func distanceLess(a, b domain.Listing) bool {
	da, okA := a.DistanceKm()
	db, okB := b.DistanceKm()
	switch {
	case okA && okB:
		return da < db
	case okA:
		return true
	default:
		return false
	}
}
