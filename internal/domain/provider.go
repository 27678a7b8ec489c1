package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// HotelProvider is the upstream hotel inventory.
// Implementations normalize upstream records into Listings.
type HotelProvider interface {
	// Name returns the provider identifier used in logs.
	Name() string

	// ResolveDestination maps free-text destination input to an upstream location id.
	// It returns ErrDestinationNotFound when the lookup yields no candidates.
	ResolveDestination(ctx context.Context, destination string) (string, error)

	// SearchHotels returns the normalized listings for a resolved location.
	// The query must carry check-in and check-out dates.
	SearchHotels(ctx context.Context, destinationID string, query SearchQuery) ([]Listing, error)
}
