package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
	"github.com/travelink/hotel-search/internal/infrastructure/timeutil"
)

// Default values for the search orchestrator.
const (
	DefaultSearchTimeout = 20 * time.Second
	DefaultCacheTTL      = time.Hour
	DefaultCacheCapacity = 256
)

// HotelSearchUseCase defines the search orchestration.
type HotelSearchUseCase interface {
	// Search resolves the destination, fetches and normalizes listings, and
	// substitutes the fallback catalog on any failure. It never fails.
	Search(ctx context.Context, query domain.SearchQuery) domain.SearchResult
}

// ResultCache holds live result sets keyed by SearchQuery.CacheKey.
type ResultCache = ttlcache.Cache[string, []domain.Listing]

// NewResultCache creates a cache whose entries expire ttl after they were
// stored. Reads do not extend the lifetime of an entry.
func NewResultCache(ttl time.Duration, capacity uint64) *ResultCache {
	opts := []ttlcache.Option[string, []domain.Listing]{
		ttlcache.WithTTL[string, []domain.Listing](ttl),
		ttlcache.WithDisableTouchOnHit[string, []domain.Listing](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, []domain.Listing](capacity))
	}
	return ttlcache.New(opts...)
}

// SearchConfig contains configuration options for the orchestrator.
type SearchConfig struct {
	// Timeout bounds one whole search, lookup and fetch included.
	Timeout time.Duration
}

type hotelSearchUseCase struct {
	provider domain.HotelProvider
	cache    *ResultCache
	clock    timeutil.Clock
	log      *logger.Logger
	timeout  time.Duration
}

// NewHotelSearchUseCase creates the orchestrator. A nil cache disables
// caching, a nil clock uses the system clock.
func NewHotelSearchUseCase(provider domain.HotelProvider, cache *ResultCache, clock timeutil.Clock, log *logger.Logger, config *SearchConfig) HotelSearchUseCase {
	timeout := DefaultSearchTimeout
	if config != nil && config.Timeout > 0 {
		timeout = config.Timeout
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &hotelSearchUseCase{
		provider: provider,
		cache:    cache,
		clock:    clock,
		log:      log,
		timeout:  timeout,
	}
}

func (uc *hotelSearchUseCase) Search(ctx context.Context, query domain.SearchQuery) domain.SearchResult {
	start := time.Now()

	query.SetDefaults()
	query = query.WithStayDates(uc.clock.Now())
	log := uc.log.WithDestination(query.Destination)

	result := uc.search(ctx, query, log)
	result.Duration = time.Since(start)

	event := log.Info()
	if result.IsFallback() {
		event = log.Warn().Str("fallback_reason", string(result.FallbackReason))
	}
	event.
		Str("source", string(result.Source)).
		Bool("cache_hit", result.CacheHit).
		Int("results", len(result.Listings)).
		Dur("duration", result.Duration).
		Msg("hotel search completed")

	return result
}

func (uc *hotelSearchUseCase) search(ctx context.Context, query domain.SearchQuery, log *logger.Logger) domain.SearchResult {
	key := query.CacheKey()
	if uc.cache != nil {
		if item := uc.cache.Get(key); item != nil {
			result := domain.NewLiveResult(query, cloneListings(item.Value()))
			result.CacheHit = true
			return result
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	destID, err := callProvider(func() (string, error) {
		return uc.provider.ResolveDestination(ctx, query.Destination)
	})
	if err == nil && destID == "" {
		err = domain.ErrDestinationNotFound
	}
	if err != nil {
		log.Warn().Err(err).Msg("destination lookup failed, using fallback catalog")
		return fallbackResult(query, domain.ReasonResolutionFailed)
	}

	listings, err := callProvider(func() ([]domain.Listing, error) {
		return uc.provider.SearchHotels(ctx, destID, query)
	})
	if err != nil {
		log.Warn().Err(err).Str("dest_id", destID).Msg("hotel fetch failed, using fallback catalog")
		return fallbackResult(query, domain.ReasonFetchFailed)
	}

	listings = sanitizeListings(listings, log)
	if len(listings) == 0 {
		log.Warn().Str("dest_id", destID).Msg("no hotels returned, using fallback catalog")
		return fallbackResult(query, domain.ReasonEmptyResults)
	}

	if uc.cache != nil {
		uc.cache.Set(key, cloneListings(listings), ttlcache.DefaultTTL)
	}
	return domain.NewLiveResult(query, listings)
}

func fallbackResult(query domain.SearchQuery, reason domain.FallbackReason) domain.SearchResult {
	return domain.NewFallbackResult(query, FallbackCatalog(query.Destination), reason)
}

// callProvider turns a provider panic into an error.
func callProvider[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return fn()
}

// sanitizeListings drops listings that break the listing invariants and
// repeated ids, keeping the first occurrence.
func sanitizeListings(listings []domain.Listing, log *logger.Logger) []domain.Listing {
	result := make([]domain.Listing, 0, len(listings))
	seen := make(map[domain.ListingID]struct{}, len(listings))

	for _, l := range listings {
		if err := l.Validate(); err != nil {
			log.Warn().Err(err).Str("listing_id", l.ID.String()).Msg("dropping invalid listing")
			continue
		}
		if _, dup := seen[l.ID]; dup {
			log.Warn().Str("listing_id", l.ID.String()).Msg("dropping duplicate listing id")
			continue
		}
		seen[l.ID] = struct{}{}
		result = append(result, l)
	}
	return result
}

func cloneListings(listings []domain.Listing) []domain.Listing {
	result := make([]domain.Listing, len(listings))
	copy(result, listings)
	return result
}

var _ HotelSearchUseCase = (*hotelSearchUseCase)(nil)
