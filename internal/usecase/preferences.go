package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// PreferenceService keeps the favorites set and theme in memory and
// writes every change through to the preference store.
type PreferenceService struct {
	store domain.PreferenceStore
	log   *logger.Logger

	mu        sync.RWMutex
	favorites *domain.FavoritesSet
	theme     domain.Theme
}

// NewPreferenceService loads the persisted preferences once. Unreadable
// or corrupted values are logged and replaced by the defaults.
func NewPreferenceService(ctx context.Context, store domain.PreferenceStore, log *logger.Logger) *PreferenceService {
	if log == nil {
		log = logger.Nop()
	}
	s := &PreferenceService{
		store:     store,
		log:       log,
		favorites: domain.NewFavoritesSet(nil),
		theme:     domain.ThemeLight,
	}
	s.load(ctx)
	return s
}

func (s *PreferenceService) load(ctx context.Context) {
	raw, ok, err := s.store.Get(ctx, domain.FavoritesKey)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("key", domain.FavoritesKey).Msg("failed to read favorites, starting empty")
	case ok:
		var ids []domain.ListingID
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			s.log.Warn().Err(err).Str("key", domain.FavoritesKey).Msg("corrupted favorites, starting empty")
		} else {
			s.favorites = domain.NewFavoritesSet(ids)
		}
	}

	raw, ok, err = s.store.Get(ctx, domain.ThemeKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", domain.ThemeKey).Msg("failed to read theme, using light")
		return
	}
	// Anything but "dark" means light.
	if ok && domain.Theme(raw) == domain.ThemeDark {
		s.theme = domain.ThemeDark
	}
}

// Theme returns the current theme.
func (s *PreferenceService) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores t. The store is only written when the theme changes.
func (s *PreferenceService) SetTheme(ctx context.Context, t domain.Theme) (domain.Theme, error) {
	t, err := domain.ParseTheme(string(t))
	if err != nil {
		return s.Theme(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t == s.theme {
		return t, nil
	}
	if err := s.store.Set(ctx, domain.ThemeKey, string(t)); err != nil {
		return s.theme, fmt.Errorf("save theme: %w: %w", domain.ErrPersistence, err)
	}
	s.theme = t
	return t, nil
}

// ToggleTheme flips between light and dark.
func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Toggled()
	if err := s.store.Set(ctx, domain.ThemeKey, string(next)); err != nil {
		return s.theme, fmt.Errorf("save theme: %w: %w", domain.ErrPersistence, err)
	}
	s.theme = next
	return next, nil
}

// FavoriteIDs returns a copy of the favorites in insertion order.
func (s *PreferenceService) FavoriteIDs() []domain.ListingID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.IDs()
}

// IsFavorite reports whether id is in the favorites set.
func (s *PreferenceService) IsFavorite(id domain.ListingID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.Contains(id)
}

// UpdateFavorites applies fn to a copy of the favorites set, persists the
// copy and only then makes it current. fn runs under the service lock.
func (s *PreferenceService) UpdateFavorites(ctx context.Context, fn func(*domain.FavoritesSet)) ([]domain.ListingID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.NewFavoritesSet(s.favorites.IDs())
	fn(next)

	data, err := json.Marshal(next.IDs())
	if err != nil {
		return s.favorites.IDs(), fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.store.Set(ctx, domain.FavoritesKey, string(data)); err != nil {
		return s.favorites.IDs(), fmt.Errorf("save favorites: %w: %w", domain.ErrPersistence, err)
	}

	s.favorites = next
	return next.IDs(), nil
}
