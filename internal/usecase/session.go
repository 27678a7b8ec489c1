package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// DefaultDestination is searched at startup when none is configured.
const DefaultDestination = "Paris"

// Session is the single application state: the full result set of the
// latest committed search and the display state applied to it.
//
// Every search takes a generation number when it is triggered. A result is
// committed only if no newer search has been committed meanwhile, so the
// most recently triggered search always wins regardless of completion order.
type Session struct {
	searcher           HotelSearchUseCase
	favorites          *FavoritesService
	defaultDestination string
	log                *logger.Logger

	generation atomic.Uint64

	mu        sync.RWMutex
	committed uint64
	result    domain.SearchResult
	hasResult bool
	state     domain.DisplayState
}

// NewSession creates an empty session.
func NewSession(searcher HotelSearchUseCase, favorites *FavoritesService, defaultDestination string, log *logger.Logger) *Session {
	if strings.TrimSpace(defaultDestination) == "" {
		defaultDestination = DefaultDestination
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		searcher:           searcher,
		favorites:          favorites,
		defaultDestination: defaultDestination,
		log:                log,
		result:             domain.NewLiveResult(domain.SearchQuery{}, nil),
		state:              domain.DefaultDisplayState(),
	}
}

// Search runs a new search and, unless a newer one has been committed,
// replaces the full result set and resets the display state.
//
// An empty destination returns domain.ErrEmptyDestination without any
// upstream call and leaves the state untouched. If ctx is done by the
// time the search returns, the result is handed back with ctx.Err() and
// not committed.
func (s *Session) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return domain.SearchResult{}, err
	}

	gen := s.generation.Add(1)
	log := s.log.WithGeneration(gen)

	result := s.searcher.Search(ctx, query)
	result.Generation = gen

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Msg("search abandoned by caller, not committed")
		return result, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.committed {
		result.Stale = true
		log.Info().
			Uint64("committed_generation", s.committed).
			Msg("discarding stale search result")
		return result, nil
	}

	s.committed = gen
	s.result = result
	s.hasResult = true
	s.state = domain.DefaultDisplayState()
	return result, nil
}

// LoadDefault searches the default destination, as done on startup.
func (s *Session) LoadDefault(ctx context.Context) (domain.SearchResult, error) {
	return s.Search(ctx, domain.SearchQuery{Destination: s.defaultDestination})
}

// Display validates and stores a new display state and returns the view.
func (s *Session) Display(state domain.DisplayState) (domain.DisplayView, error) {
	if err := state.Validate(); err != nil {
		return domain.DisplayView{}, err
	}
	if state.Category == "" {
		state.Category = domain.CategoryAll
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	return ApplyDisplay(s.result.Listings, s.state), nil
}

// Current returns the view under the current display state.
func (s *Session) Current() domain.DisplayView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ApplyDisplay(s.result.Listings, s.state)
}

// Result returns the committed search result. ok is false before the
// first search has been committed.
func (s *Session) Result() (result domain.SearchResult, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result = s.result
	result.Listings = cloneListings(s.result.Listings)
	return result, s.hasResult
}

// FavoriteListings returns the favorites present in the full result set,
// in result set order.
func (s *Session) FavoriteListings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Listing, 0)
	for _, l := range s.result.Listings {
		if s.favorites.IsFavorite(l.ID) {
			result = append(result, l)
		}
	}
	return result
}

// Listing looks up a listing of the full result set by id.
func (s *Session) Listing(id domain.ListingID) (domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.result.Listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrListingNotFound
}

// DefaultDestination returns the destination searched by LoadDefault.
func (s *Session) DefaultDestination() string {
	return s.defaultDestination
}
