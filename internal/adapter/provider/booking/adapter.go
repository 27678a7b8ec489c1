// Package booking implements domain.HotelProvider on top of the
// Booking.com API published through RapidAPI.
package booking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
	"github.com/travelink/hotel-search/internal/infrastructure/randutil"
	"github.com/travelink/hotel-search/internal/infrastructure/retry"
)

// Config holds the adapter settings.
type Config struct {
	BaseURL string
	APIKey  string
	APIHost string

	// Timeout bounds each upstream attempt.
	Timeout time.Duration

	Retry retry.Config
}

// DefaultConfig returns the production defaults without credentials.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		APIHost: DefaultAPIHost,
		Timeout: 8 * time.Second,
		Retry:   retry.DefaultConfig,
	}
}

// Adapter resolves destinations and fetches listings from Booking.com.
type Adapter struct {
	client     *Client
	normalizer *normalizer
	timeout    time.Duration
	retryCfg   retry.Config
	log        *logger.Logger
}

// NewAdapter builds an adapter. rnd fills gaps in upstream records and
// may be nil for a time-seeded source.
func NewAdapter(cfg Config, httpClient *http.Client, rnd randutil.Source, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithProvider(ProviderName)

	retryCfg := cfg.Retry.WithRetryIf(domain.IsRetryable).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("wait", wait).
				Msg("retrying upstream call")
		})

	return &Adapter{
		client:     NewClient(cfg.BaseURL, cfg.APIKey, cfg.APIHost, httpClient),
		normalizer: newNormalizer(rnd),
		timeout:    cfg.Timeout,
		retryCfg:   retryCfg,
		log:        log,
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// ResolveDestination returns the dest_id of the first candidate.
func (a *Adapter) ResolveDestination(ctx context.Context, destination string) (string, error) {
	candidates, err := retry.DoWithResult(ctx, func() ([]Destination, error) {
		callCtx, cancel := a.callContext(ctx)
		defer cancel()
		return a.client.SearchDestination(callCtx, destination)
	}, a.retryCfg)
	if err != nil {
		return "", fmt.Errorf("resolve destination %q: %w", destination, err)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("resolve destination %q: %w", destination, domain.ErrDestinationNotFound)
	}
	id := rawID(candidates[0].DestID)
	if id == "" {
		return "", fmt.Errorf("resolve destination %q: empty dest_id: %w", destination, domain.ErrDestinationNotFound)
	}

	a.log.Debug().
		Str("destination", destination).
		Str("dest_id", id).
		Int("candidates", len(candidates)).
		Msg("destination resolved")
	return id, nil
}

// SearchHotels fetches and normalizes the listings of a resolved destination.
// The query is expected to carry stay dates already.
func (a *Adapter) SearchHotels(ctx context.Context, destinationID string, query domain.SearchQuery) ([]domain.Listing, error) {
	params := HotelSearchParams{
		DestID:   destinationID,
		CheckIn:  query.CheckIn,
		CheckOut: query.CheckOut,
		Adults:   query.Adults,
		Rooms:    query.Rooms,
	}

	page, err := retry.DoWithResult(ctx, func() (HotelsPage, error) {
		callCtx, cancel := a.callContext(ctx)
		defer cancel()
		return a.client.SearchHotels(callCtx, params)
	}, a.retryCfg)
	if err != nil {
		return nil, fmt.Errorf("search hotels for %s: %w", destinationID, err)
	}

	listings, skipped := a.normalizer.normalize(page.Hotels)
	if skipped > 0 || page.Malformed > 0 {
		a.log.Warn().
			Str("dest_id", destinationID).
			Int("malformed", page.Malformed).
			Int("skipped", skipped).
			Msg("dropped hotels that could not be decoded or normalized")
	}
	return listings, nil
}

func (a *Adapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

var _ domain.HotelProvider = (*Adapter)(nil)
