// Package mock provides test doubles for the hotel search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/travelink/hotel-search/internal/domain"
)

// Provider is a configurable mock implementation of domain.HotelProvider.
// Listings can be configured per destination; destinations without an
// entry resolve to ErrDestinationNotFound unless a default is set.
type Provider struct {
	name string

	mu          sync.Mutex
	byDest      map[string][]domain.Listing
	defaults    []domain.Listing
	resolveErr  error
	searchErr   error
	delay       time.Duration
	delays      map[string]time.Duration
	resolveCall int
	searchCall  int
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:   name,
		byDest: make(map[string][]domain.Listing),
		delays: make(map[string]time.Duration),
	}
}

// WithListings configures the listings returned for every destination.
func (p *Provider) WithListings(listings []domain.Listing) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaults = listings
	return p
}

// WithDestination configures the listings returned for one destination.
func (p *Provider) WithDestination(destination string, listings []domain.Listing) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byDest[destination] = listings
	return p
}

// WithResolveError makes destination lookups fail with err.
func (p *Provider) WithResolveError(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolveErr = err
	return p
}

// WithSearchError makes listing fetches fail with err.
func (p *Provider) WithSearchError(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// answering a listing fetch. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = d
	return p
}

// WithDestinationDelay overrides the fetch delay for one destination.
func (p *Provider) WithDestinationDelay(destination string, d time.Duration) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delays[destination] = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// ResolveDestination implements domain.HotelProvider.ResolveDestination.
// The destination itself is used as the id.
func (p *Provider) ResolveDestination(ctx context.Context, destination string) (string, error) {
	p.mu.Lock()
	p.resolveCall++
	err := p.resolveErr
	_, known := p.byDest[destination]
	hasDefault := p.defaults != nil
	p.mu.Unlock()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}
	if !known && !hasDefault {
		return "", domain.ErrDestinationNotFound
	}
	return destination, nil
}

// SearchHotels implements domain.HotelProvider.SearchHotels.
// It respects context cancellation, applies the configured delay,
// and returns the configured listings or error.
func (p *Provider) SearchHotels(ctx context.Context, destinationID string, query domain.SearchQuery) ([]domain.Listing, error) {
	p.mu.Lock()
	p.searchCall++
	delay := p.delay
	if d, ok := p.delays[destinationID]; ok {
		delay = d
	}
	err := p.searchErr
	listings, ok := p.byDest[destinationID]
	if !ok {
		listings = p.defaults
	}
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		return nil, err
	}

	out := make([]domain.Listing, len(listings))
	copy(out, listings)
	return out, nil
}

// ResolveCount returns the number of destination lookups.
func (p *Provider) ResolveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolveCall
}

// SearchCount returns the number of listing fetches.
func (p *Provider) SearchCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchCall
}

// Reset resets the call counts to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolveCall = 0
	p.searchCall = 0
}

// Ensure Provider implements domain.HotelProvider at compile time.
var _ domain.HotelProvider = (*Provider)(nil)

var sampleCategories = []domain.Category{
	domain.CategoryHotel,
	domain.CategoryApartment,
	domain.CategoryResort,
	domain.CategoryVilla,
}

// SampleListings returns count valid listings for a destination.
// Prices rise by 30 from 60, ratings cycle through 3.5-4.9, and the
// categories cycle hotel, apartment, resort, villa.
func SampleListings(destination string, count int) []domain.Listing {
	listings := make([]domain.Listing, count)

	for i := 0; i < count; i++ {
		listings[i] = domain.Listing{
			ID:          domain.ListingID(fmt.Sprintf("%d", 1000+i)),
			Name:        fmt.Sprintf("%s Stay %d", destination, i+1),
			Location:    destination,
			Price:       60 + float64(i*30),
			Currency:    "EUR",
			Rating:      3.5 + float64(i%8)*0.2,
			ReviewCount: 100 + i*10,
			Image:       fmt.Sprintf("https://example.com/%d.jpg", i+1),
			Amenities:   []string{"WiFi gratuit"},
			Category:    sampleCategories[i%len(sampleCategories)],
			Distance:    fmt.Sprintf("%.1f", 0.4+float64(i)*0.7),
		}
	}

	return listings
}
